package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel mirrors the 'carts' table. One row per user holding the cart
// lines as a JSON snapshot; SaveCart replaces the whole snapshot.
type CartModel struct {
	UserID    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Items     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// FavoritesModel mirrors the 'favorites' table. One row per user holding the
// ordered product ID set as JSON.
type FavoritesModel struct {
	UserID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProductIDs datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoritesModel) TableName() string {
	return "favorites"
}
