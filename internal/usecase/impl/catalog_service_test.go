package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	mockRepo "kix/internal/mocks/repository"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	reviewRepo  *mockRepo.MockReviewRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		Logger:      logger,
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

func testProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:     "Air Zoom",
		Brand:    "Nike",
		Price:    129.99,
		Category: entity.CategoryMens,
		Sizes:    []float64{8, 9, 10},
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	filter := repository.ProductFilter{Category: entity.CategoryMens}
	products := []*entity.Product{testProduct(), testProduct()}

	fx.productRepo.EXPECT().ListProducts(ctx, filter).Return(products, nil)

	result, err := fx.service.ListProducts(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestCatalogService_GetProduct_WithReviewSummary(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()
	summary := &entity.ReviewSummary{ProductID: product.ID, ReviewCount: 3, AverageRating: 4.5}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().SummarizeProduct(ctx, product.ID).Return(summary, nil)

	gotProduct, gotSummary, err := fx.service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, gotProduct)
	assert.Equal(t, summary, gotSummary)
}

func TestCatalogService_GetProduct_SummaryFailureDegradesToEmpty(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().
		SummarizeProduct(ctx, product.ID).
		Return(nil, errors.New("review store unavailable"))

	gotProduct, gotSummary, err := fx.service.GetProduct(ctx, product.ID)

	// The product page still renders, with zero reviews.
	require.NoError(t, err)
	assert.Equal(t, product, gotProduct)
	require.NotNil(t, gotSummary)
	assert.Equal(t, product.ID, gotSummary.ProductID)
	assert.Equal(t, 0, gotSummary.ReviewCount)
	assert.Equal(t, 0.0, gotSummary.AverageRating)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, _, err := fx.service.GetProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := testProductInput()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, input.Sizes, product.Sizes)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.ProductInput)
	}{
		{"missing name", func(input *usecase.ProductInput) { input.Name = "" }},
		{"missing brand", func(input *usecase.ProductInput) { input.Brand = "" }},
		{"non-positive price", func(input *usecase.ProductInput) { input.Price = 0 }},
		{"no sizes", func(input *usecase.ProductInput) { input.Sizes = nil }},
		{"unknown category", func(input *usecase.ProductInput) { input.Category = "pets" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			input := testProductInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), input)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestCatalogService_UpdateProduct_PreservesCreatedAt(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	existing := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, existing.ID).Return(existing, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	input := testProductInput()
	input.Price = 149.99

	updated, err := fx.service.UpdateProduct(ctx, existing.ID, input)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, 149.99, updated.Price)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, productID, testProductInput())

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().DeleteProduct(ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
