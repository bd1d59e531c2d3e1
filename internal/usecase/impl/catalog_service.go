package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves products matching the filter, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product with its review summary.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, *entity.ReviewSummary, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, domainerrors.ErrProductNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find product")
	}

	// Review data is decoration on the product page; a failed read degrades
	// to an empty summary instead of blocking the product.
	summary, err := srv.reviewRepo.SummarizeProduct(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to summarize product reviews", "productId", id, "error", err)
		summary = &entity.ReviewSummary{ProductID: id}
	}

	return product, summary, nil
}

// CreateProduct adds a new catalog entry.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	product := productFromInput(uuid.New(), input)
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", "productId", product.ID, "name", product.Name)

	return product, nil
}

// UpdateProduct replaces a catalog entry's fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	existing, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for update")
	}

	product := productFromInput(id, input)
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog entry.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", "productId", id)

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case input.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Brand == "":
		return domainerrors.ErrValidationFailed.WithDetails("brand is required")
	case input.Price <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case len(input.Sizes) == 0:
		return domainerrors.ErrValidationFailed.WithDetails("at least one size is required")
	}

	switch input.Category {
	case entity.CategoryMens, entity.CategoryWomens, entity.CategoryKids:
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	return nil
}

func productFromInput(id uuid.UUID, input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		ID:              id,
		Name:            input.Name,
		Brand:           input.Brand,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		DiscountPercent: input.DiscountPercent,
		OnSale:          input.OnSale,
		Category:        input.Category,
		ImageURL:        input.ImageURL,
		Images:          input.Images,
		Description:     input.Description,
		Features:        input.Features,
		Sizes:           input.Sizes,
		IsNewArrival:    input.IsNewArrival,
		IsTrending:      input.IsTrending,
	}
}
