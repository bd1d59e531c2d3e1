// Package model holds the GORM persistence models mirroring the database
// tables. Models are exported so the GORM Gen tool can consume them.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"` // Empty for federated accounts.
	DisplayName  string    `gorm:"type:varchar(100)"`
	Roles        datatypes.JSON
	Address      datatypes.JSON // Saved shipping address, nullable.
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
