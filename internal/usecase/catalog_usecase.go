package usecase

import (
	"context"

	"kix/internal/domain/entity"
	"kix/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductInput defines the data required to create or update a catalog entry.
type ProductInput struct {
	Name            string
	Brand           string
	Price           float64
	OriginalPrice   *float64
	DiscountPercent *int
	OnSale          bool
	Category        entity.Category
	ImageURL        string
	Images          []string
	Description     string
	Features        []string
	Sizes           []float64
	IsNewArrival    bool
	IsTrending      bool
}

// CatalogUsecase defines the interface for catalog browsing and merchant
// catalog management.
type CatalogUsecase interface {
	// ListProducts retrieves products matching the filter, newest first.
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)

	// GetProduct retrieves a single product with its review summary.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.ReviewSummary, error)

	// CreateProduct adds a new catalog entry. Merchant only.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a catalog entry's fields. Merchant only.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog entry. Merchant only.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
