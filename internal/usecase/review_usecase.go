package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput defines the data required to create or update a review.
type ReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// ProductReviewsOutput bundles a product's reviews with their aggregate.
type ProductReviewsOutput struct {
	Reviews []*entity.Review
	Summary *entity.ReviewSummary
}

// ReviewUsecase defines the interface for product reviews.
type ReviewUsecase interface {
	// ListProductReviews retrieves a product's reviews, newest first, with
	// the aggregate summary.
	ListProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviewsOutput, error)

	// CreateReview adds a review. One review per product per user.
	CreateReview(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// UpdateReview edits the user's own review.
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// DeleteReview removes the user's own review.
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
