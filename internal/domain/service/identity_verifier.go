package service

import "context"

// FederatedUser represents user information verified by a federated identity
// provider.
type FederatedUser struct {
	ID            string // Provider-specific user ID (the token's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	EmailVerified bool   // Whether the provider verified the email
}

// IdentityVerifier defines the interface for verifying federated sign-in
// tokens. Clients that sign in through a hosted identity provider send the
// provider's ID token, which is verified server-side before an account is
// resolved or created.
type IdentityVerifier interface {
	// VerifyIDToken verifies a provider ID token and returns the verified
	// user information.
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedUser, error)
}
