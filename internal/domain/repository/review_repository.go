package repository

import (
	"context"

	"kix/internal/domain/entity"
	"kix/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the product.
	ErrDuplicateReview = errors.New("review already exists for this product and user")
)

// ReviewRepository defines the interface for review database operations.
type ReviewRepository interface {
	// CreateReview persists a new review. Returns ErrDuplicateReview when the
	// (product, user) pair already has one.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID.
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindReviewsByProduct retrieves all reviews for a product, newest first.
	FindReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// SummarizeProduct returns the review count and average rating for a product.
	SummarizeProduct(ctx context.Context, productID uuid.UUID) (*entity.ReviewSummary, error)

	// UpdateReview persists changes to an existing review.
	UpdateReview(ctx context.Context, review *entity.Review) error

	// DeleteReview removes a review.
	DeleteReview(ctx context.Context, id uuid.UUID) error
}
