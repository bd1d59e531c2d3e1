package postgres

import (
	"context"
	"encoding/json"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new catalog entry.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// FindProductsByIDs retrieves the products for the given IDs.
func (repo *productRepository) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomains(productModels)
}

// ListProducts retrieves products matching the filter, newest first.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.OnSale != nil {
		query = query.Where("on_sale = ?", *filter.OnSale)
	}
	if filter.NewArrival != nil {
		query = query.Where("is_new_arrival = ?", *filter.NewArrival)
	}
	if filter.Trending != nil {
		query = query.Where("is_trending = ?", *filter.Trending)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR brand ILIKE ?", pattern, pattern)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels)
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM, err := fromProductDomain(product)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product from the catalog (soft delete).
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mappers ---

func fromProductDomain(product *entity.Product) (*model.ProductModel, error) {
	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal product images")
	}
	featuresJSON, err := json.Marshal(product.Features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal product features")
	}
	sizesJSON, err := json.Marshal(product.Sizes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal product sizes")
	}

	return &model.ProductModel{
		ID:              product.ID,
		Name:            product.Name,
		Brand:           product.Brand,
		Price:           product.Price,
		OriginalPrice:   product.OriginalPrice,
		DiscountPercent: product.DiscountPercent,
		OnSale:          product.OnSale,
		Category:        string(product.Category),
		ImageURL:        product.ImageURL,
		Images:          imagesJSON,
		Description:     product.Description,
		Features:        featuresJSON,
		Sizes:           sizesJSON,
		IsNewArrival:    product.IsNewArrival,
		IsTrending:      product.IsTrending,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}, nil
}

func toProductDomain(productM *model.ProductModel) (*entity.Product, error) {
	product := &entity.Product{
		ID:              productM.ID,
		Name:            productM.Name,
		Brand:           productM.Brand,
		Price:           productM.Price,
		OriginalPrice:   productM.OriginalPrice,
		DiscountPercent: productM.DiscountPercent,
		OnSale:          productM.OnSale,
		Category:        entity.Category(productM.Category),
		ImageURL:        productM.ImageURL,
		Description:     productM.Description,
		IsNewArrival:    productM.IsNewArrival,
		IsTrending:      productM.IsTrending,
		CreatedAt:       productM.CreatedAt,
		UpdatedAt:       productM.UpdatedAt,
	}

	if len(productM.Images) > 0 {
		if err := json.Unmarshal(productM.Images, &product.Images); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal product images")
		}
	}
	if len(productM.Features) > 0 {
		if err := json.Unmarshal(productM.Features, &product.Features); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal product features")
		}
	}
	if len(productM.Sizes) > 0 {
		if err := json.Unmarshal(productM.Sizes, &product.Sizes); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal product sizes")
		}
	}

	return product, nil
}

func toProductDomains(productModels []*model.ProductModel) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
