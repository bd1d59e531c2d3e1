package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// FederatedLoginInput defines the data required for a federated sign-in.
// The ID token comes from the client's hosted identity provider session.
type FederatedLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful sign-in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new customer account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates an email and password pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// LoginWithIDToken verifies a federated ID token, provisioning an account
	// on first sign-in, and signs the user in.
	LoginWithIDToken(ctx context.Context, input *FederatedLoginInput) (*AuthOutput, error)

	// GetProfile retrieves the user's account profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// SaveAddress stores the user's preferred shipping address for future
	// checkouts.
	SaveAddress(ctx context.Context, userID uuid.UUID, address *entity.ShippingAddress) error
}
