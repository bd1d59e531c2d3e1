package entity

import "github.com/google/uuid"

// Favorites is an ordered set of product IDs. Order reflects when each
// product was first favorited.
type Favorites struct {
	ProductIDs []uuid.UUID
}

// NewFavorites returns an empty favorites set.
func NewFavorites() *Favorites {
	return &Favorites{}
}

// Contains reports whether the product is favorited.
func (f *Favorites) Contains(productID uuid.UUID) bool {
	for _, id := range f.ProductIDs {
		if id == productID {
			return true
		}
	}

	return false
}

// Add appends the product unless it is already present.
func (f *Favorites) Add(productID uuid.UUID) {
	if f.Contains(productID) {
		return
	}

	f.ProductIDs = append(f.ProductIDs, productID)
}

// Remove deletes the product from the set. Absent products are a no-op.
func (f *Favorites) Remove(productID uuid.UUID) {
	for idx, id := range f.ProductIDs {
		if id == productID {
			f.ProductIDs = append(f.ProductIDs[:idx], f.ProductIDs[idx+1:]...)

			return
		}
	}
}

// Toggle adds the product when absent and removes it when present. It returns
// true when the product ends up favorited.
func (f *Favorites) Toggle(productID uuid.UUID) bool {
	if f.Contains(productID) {
		f.Remove(productID)

		return false
	}

	f.Add(productID)

	return true
}

// Count returns the number of favorited products.
func (f *Favorites) Count() int {
	return len(f.ProductIDs)
}

// Clone returns a deep copy of the set.
func (f *Favorites) Clone() *Favorites {
	clone := &Favorites{}
	if len(f.ProductIDs) > 0 {
		clone.ProductIDs = make([]uuid.UUID, len(f.ProductIDs))
		copy(clone.ProductIDs, f.ProductIDs)
	}

	return clone
}

// MergeFavorites unions a durable set with a guest set: durable entries keep
// their order, then guest entries not already present are appended in guest
// order. Inputs are not mutated.
func MergeFavorites(durable, guest *Favorites) *Favorites {
	merged := durable.Clone()
	for _, id := range guest.ProductIDs {
		merged.Add(id)
	}

	return merged
}
