package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the storefront.
type Category string

const (
	CategoryMens   Category = "mens"
	CategoryWomens Category = "womens"
	CategoryKids   Category = "kids"
)

// Product represents a catalog entry. Price is the current sell price;
// OriginalPrice is set only when the product is on sale.
type Product struct {
	ID              uuid.UUID
	Name            string
	Brand           string
	Price           float64
	OriginalPrice   *float64
	DiscountPercent *int
	OnSale          bool
	Category        Category
	ImageURL        string
	Images          []string
	Description     string
	Features        []string
	Sizes           []float64 // Available shoe sizes.
	IsNewArrival    bool
	IsTrending      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot captures the display data that is denormalized onto a cart line
// at add time. Later catalog edits must not change what is in a cart.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
	}
}

// ProductSnapshot is the frozen display data carried by cart lines and order
// items.
type ProductSnapshot struct {
	ProductID uuid.UUID
	Name      string
	Brand     string
	Price     float64
	ImageURL  string
}
