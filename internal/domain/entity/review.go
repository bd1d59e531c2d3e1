package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review of a product. One review per (product, user).
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	UserName  string
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewSummary aggregates a product's reviews for listing pages.
type ReviewSummary struct {
	ProductID     uuid.UUID
	ReviewCount   int
	AverageRating float64
}
