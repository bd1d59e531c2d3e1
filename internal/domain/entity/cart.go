package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CartLineKey identifies a cart line. The same product in two sizes is two
// distinct lines.
type CartLineKey struct {
	ProductID uuid.UUID
	Size      float64
}

// CartItem is one line of a cart. Display fields are frozen at add time so
// later catalog edits do not rewrite what the shopper saw.
type CartItem struct {
	ProductID uuid.UUID
	Size      float64
	Quantity  int
	Name      string
	Brand     string
	Price     float64
	ImageURL  string
	AddedAt   time.Time
}

// Key returns the line's identity within the cart.
func (i CartItem) Key() CartLineKey {
	return CartLineKey{ProductID: i.ProductID, Size: i.Size}
}

// Cart is an ordered collection of lines. Insertion order is preserved so
// shoppers see their cart in the order they built it.
type Cart struct {
	Items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) find(key CartLineKey) int {
	for idx, item := range c.Items {
		if item.Key() == key {
			return idx
		}
	}

	return -1
}

// Add puts quantity units of the given product and size into the cart. When
// the line already exists its quantity is increased; otherwise a new line is
// appended. Non-positive quantities are ignored.
func (c *Cart) Add(snapshot ProductSnapshot, size float64, quantity int, now time.Time) {
	if quantity <= 0 {
		return
	}

	key := CartLineKey{ProductID: snapshot.ProductID, Size: size}
	if idx := c.find(key); idx >= 0 {
		c.Items[idx].Quantity += quantity

		return
	}

	c.Items = append(c.Items, CartItem{
		ProductID: snapshot.ProductID,
		Size:      size,
		Quantity:  quantity,
		Name:      snapshot.Name,
		Brand:     snapshot.Brand,
		Price:     snapshot.Price,
		ImageURL:  snapshot.ImageURL,
		AddedAt:   now,
	})
}

// Remove deletes the line identified by key. Removing an absent line is a
// no-op.
func (c *Cart) Remove(key CartLineKey) {
	idx := c.find(key)
	if idx < 0 {
		return
	}

	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// SetQuantity replaces the quantity of an existing line. Quantities below one
// and absent lines are ignored; removal is an explicit Remove, never a side
// effect of a quantity update.
func (c *Cart) SetQuantity(key CartLineKey, quantity int) {
	if quantity < 1 {
		return
	}

	if idx := c.find(key); idx >= 0 {
		c.Items[idx].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Contains reports whether the cart holds a line for the given key.
func (c *Cart) Contains(key CartLineKey) bool {
	return c.find(key) >= 0
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Subtotal returns the sum of price×quantity across all lines, rounded to
// cents.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price * float64(item.Quantity)
	}

	return RoundCents(sum)
}

// Clone returns a deep copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{}
	if len(c.Items) > 0 {
		clone.Items = make([]CartItem, len(c.Items))
		copy(clone.Items, c.Items)
	}

	return clone
}

// MergeCarts combines a durable (account) cart with a guest (device) cart.
// Durable lines come first in their original order, then guest lines that
// introduce new (product, size) keys. When both carts hold the same key the
// quantities are summed onto the durable line and the durable display fields
// win. Inputs are not mutated.
func MergeCarts(durable, guest *Cart) *Cart {
	merged := durable.Clone()
	for _, item := range guest.Items {
		if idx := merged.find(item.Key()); idx >= 0 {
			merged.Items[idx].Quantity += item.Quantity

			continue
		}

		merged.Items = append(merged.Items, item)
	}

	return merged
}

// RoundCents rounds a monetary amount to two decimal places, half away from
// zero.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
