package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_AddIsIdempotent(t *testing.T) {
	favorites := NewFavorites()
	productID := uuid.New()

	favorites.Add(productID)
	favorites.Add(productID)

	assert.Equal(t, 1, favorites.Count())
	assert.True(t, favorites.Contains(productID))
}

func TestFavorites_Toggle(t *testing.T) {
	favorites := NewFavorites()
	productID := uuid.New()

	assert.True(t, favorites.Toggle(productID))
	assert.True(t, favorites.Contains(productID))

	assert.False(t, favorites.Toggle(productID))
	assert.False(t, favorites.Contains(productID))
}

func TestFavorites_RemoveAbsentIsNoOp(t *testing.T) {
	favorites := NewFavorites()
	favorites.Add(uuid.New())

	favorites.Remove(uuid.New())

	assert.Equal(t, 1, favorites.Count())
}

func TestMergeFavorites_UnionKeepsDurableOrderFirst(t *testing.T) {
	shared := uuid.New()
	durableOnly := uuid.New()
	guestOnly := uuid.New()

	durable := &Favorites{ProductIDs: []uuid.UUID{durableOnly, shared}}
	guest := &Favorites{ProductIDs: []uuid.UUID{shared, guestOnly}}

	merged := MergeFavorites(durable, guest)

	require.Equal(t, 3, merged.Count())
	assert.Equal(t, []uuid.UUID{durableOnly, shared, guestOnly}, merged.ProductIDs)
}

func TestMergeFavorites_DoesNotMutateInputs(t *testing.T) {
	durable := &Favorites{ProductIDs: []uuid.UUID{uuid.New()}}
	guest := &Favorites{ProductIDs: []uuid.UUID{uuid.New()}}

	MergeFavorites(durable, guest)

	assert.Equal(t, 1, durable.Count())
	assert.Equal(t, 1, guest.Count())
}
