package model

import (
	"time"

	"github.com/google/uuid"
)

// PromoCodeModel mirrors the 'promo_codes' table. Codes are stored uppercase.
type PromoCodeModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code            string    `gorm:"type:varchar(50);unique;not null"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Value           float64   `gorm:"not null"`
	Description     string    `gorm:"type:text"`
	Active          bool      `gorm:"not null;default:true"`
	ExpirationDate  *time.Time
	MinimumPurchase float64 `gorm:"not null;default:0"`
	UsageCount      int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}
