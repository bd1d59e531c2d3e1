package repository

import (
	"context"

	"kix/internal/domain/entity"
	"kix/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	Category   entity.Category
	Brand      string
	OnSale     *bool
	NewArrival *bool
	Trending   *bool
	Search     string // Matches name or brand, case-insensitive.
}

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// CreateProduct persists a new catalog entry.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs retrieves the products for the given IDs. Missing IDs
	// are silently omitted from the result.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListProducts retrieves products matching the filter, newest first.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
