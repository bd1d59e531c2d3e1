// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// IdentityKind distinguishes anonymous (device-scoped) sessions from
// authenticated (account-scoped) sessions.
type IdentityKind string

const (
	IdentityAnonymous     IdentityKind = "anonymous"
	IdentityAuthenticated IdentityKind = "authenticated"
)

// Identity describes who the current session belongs to. UserID is the zero
// UUID for anonymous sessions.
type Identity struct {
	Kind   IdentityKind
	UserID uuid.UUID
}

// Anonymous returns the identity of a guest session.
func Anonymous() Identity {
	return Identity{Kind: IdentityAnonymous}
}

// Authenticated returns the identity of a signed-in user.
func Authenticated(userID uuid.UUID) Identity {
	return Identity{Kind: IdentityAuthenticated, UserID: userID}
}

// IsAuthenticated reports whether the identity belongs to a signed-in user.
func (i Identity) IsAuthenticated() bool {
	return i.Kind == IdentityAuthenticated && i.UserID != uuid.Nil
}

// TransitionKind classifies an identity change. Exactly one kind applies to
// any (previous, current) pair.
type TransitionKind string

const (
	// TransitionNone covers anonymous→anonymous: nothing to do.
	TransitionNone TransitionKind = "none"
	// TransitionSignIn covers anonymous→authenticated: the only transition
	// that may trigger a guest-state merge.
	TransitionSignIn TransitionKind = "sign_in"
	// TransitionSignOut covers authenticated→anonymous: the durable view is
	// discarded and the device-local view becomes active again.
	TransitionSignOut TransitionKind = "sign_out"
	// TransitionRehydrate covers authenticated→authenticated: the durable
	// state is reloaded verbatim, never re-merged.
	TransitionRehydrate TransitionKind = "rehydrate"
)

// ClassifyTransition maps a (previous, current) identity pair to its
// transition kind.
func ClassifyTransition(previous, current Identity) TransitionKind {
	switch {
	case !previous.IsAuthenticated() && current.IsAuthenticated():
		return TransitionSignIn
	case previous.IsAuthenticated() && !current.IsAuthenticated():
		return TransitionSignOut
	case previous.IsAuthenticated() && current.IsAuthenticated():
		return TransitionRehydrate
	default:
		return TransitionNone
	}
}
