package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Brand           string    `gorm:"type:varchar(100);not null;index"`
	Price           float64   `gorm:"not null"`
	OriginalPrice   *float64
	DiscountPercent *int
	OnSale          bool           `gorm:"not null;default:false"`
	Category        string         `gorm:"type:varchar(20);not null;index"`
	ImageURL        string         `gorm:"type:text"`
	Images          datatypes.JSON // Additional gallery image URLs.
	Description     string         `gorm:"type:text"`
	Features        datatypes.JSON
	Sizes           datatypes.JSON `gorm:"not null"` // Available shoe sizes.
	IsNewArrival    bool           `gorm:"not null;default:false"`
	IsTrending      bool           `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
