package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_IsAuthenticated(t *testing.T) {
	assert.False(t, Anonymous().IsAuthenticated())
	assert.True(t, Authenticated(uuid.New()).IsAuthenticated())

	// An authenticated identity without a user ID never counts.
	assert.False(t, Identity{Kind: IdentityAuthenticated}.IsAuthenticated())
}

func TestClassifyTransition(t *testing.T) {
	userA := Authenticated(uuid.New())
	userB := Authenticated(uuid.New())

	tests := []struct {
		name     string
		previous Identity
		current  Identity
		want     TransitionKind
	}{
		{"anonymous to anonymous", Anonymous(), Anonymous(), TransitionNone},
		{"anonymous to authenticated", Anonymous(), userA, TransitionSignIn},
		{"authenticated to anonymous", userA, Anonymous(), TransitionSignOut},
		{"same user again", userA, userA, TransitionRehydrate},
		{"switched account", userA, userB, TransitionRehydrate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTransition(tt.previous, tt.current))
		})
	}
}
