package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is the business profile printed on invoice headers. One row
// per user account.
type Settings struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;unique;not null" json:"user_id"`
	BusinessName   string         `gorm:"size:255" json:"business_name"`
	Address        string         `gorm:"type:text" json:"address"`
	Phone          string         `gorm:"size:50" json:"phone"`
	Email          string         `gorm:"size:255" json:"email"`
	GSTIN          string         `gorm:"size:50" json:"gstin"`
	CurrencySymbol string         `gorm:"size:10;default:'₹'" json:"currency_symbol"`
	InvoiceFooter  string         `gorm:"type:text" json:"invoice_footer"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating settings
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
