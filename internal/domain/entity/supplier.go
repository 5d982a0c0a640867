package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a vendor on the purchase and expense screens
type Supplier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null;index" json:"name"`
	ContactPerson string         `gorm:"size:255" json:"contact_person"`
	Phone         string         `gorm:"size:50;index" json:"phone"`
	Email         string         `gorm:"size:255" json:"email"`
	Address       string         `gorm:"type:text" json:"address"`
	GSTIN         string         `gorm:"size:50" json:"gstin"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
