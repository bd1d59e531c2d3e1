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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      logger,
	})

	return reviewServiceFixtures{
		service:     service,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestReviewService_ListProductReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), ProductID: productID, Rating: 5}}
	summary := &entity.ReviewSummary{ProductID: productID, ReviewCount: 1, AverageRating: 5}

	fx.reviewRepo.EXPECT().FindReviewsByProduct(ctx, productID).Return(reviews, nil)
	fx.reviewRepo.EXPECT().SummarizeProduct(ctx, productID).Return(summary, nil)

	output, err := fx.service.ListProductReviews(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, reviews, output.Reviews)
	assert.Equal(t, summary, output.Summary)
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	product := testProduct()
	user := &entity.User{ID: uuid.New(), DisplayName: "Jamie Doe"}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.reviewRepo.EXPECT().CreateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	review, err := fx.service.CreateReview(ctx, user.ID, &usecase.ReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   "Comfortable fit",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jamie Doe", review.UserName)
	assert.Equal(t, 4, review.Rating)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.ReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestReviewService_CreateReview_SecondReviewRejected(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	product := testProduct()
	user := &entity.User{ID: uuid.New(), DisplayName: "Jamie Doe"}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.reviewRepo.EXPECT().CreateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(repository.ErrDuplicateReview)

	_, err := fx.service.CreateReview(ctx, user.ID, &usecase.ReviewInput{ProductID: product.ID, Rating: 5})

	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_UpdateReview_OwnershipEnforced(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), UserID: uuid.New(), Rating: 3}

	fx.reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)

	_, err := fx.service.UpdateReview(ctx, uuid.New(), review.ID, &usecase.ReviewInput{Rating: 5})

	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnershipViolation)
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	review := &entity.Review{ID: uuid.New(), UserID: userID, Rating: 3, Comment: "OK"}

	fx.reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)
	fx.reviewRepo.EXPECT().UpdateReview(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	updated, err := fx.service.UpdateReview(ctx, userID, review.ID, &usecase.ReviewInput{Rating: 5, Comment: "Great after break-in"})

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "Great after break-in", updated.Comment)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().FindReviewByID(ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, uuid.New(), reviewID)

	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	review := &entity.Review{ID: uuid.New(), UserID: userID, Rating: 2}

	fx.reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)
	fx.reviewRepo.EXPECT().DeleteReview(ctx, review.ID).Return(nil)

	err := fx.service.DeleteReview(ctx, userID, review.ID)

	assert.NoError(t, err)
}
