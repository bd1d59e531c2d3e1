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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProductReviews retrieves a product's reviews, newest first, with the
// aggregate summary.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) (*usecase.ProductReviewsOutput, error) {
	reviews, err := srv.reviewRepo.FindReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	summary, err := srv.reviewRepo.SummarizeProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize product reviews")
	}

	return &usecase.ProductReviewsOutput{
		Reviews: reviews,
		Summary: summary,
	}, nil
}

// CreateReview adds a review. One review per product per user.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindProductByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for review")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find reviewer")
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		UserName:  user.DisplayName,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created", "productId", input.ProductID, "rating", input.Rating)

	return review, nil
}

// UpdateReview edits the user's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	review, err := srv.findOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	review.UpdatedAt = time.Now()

	if err := srv.reviewRepo.UpdateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes the user's own review.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := srv.findOwnedReview(ctx, userID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.DeleteReview(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *reviewService) findOwnedReview(ctx context.Context, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.UserID != userID {
		return nil, domainerrors.ErrReviewOwnershipViolation
	}

	return review, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	return nil
}
