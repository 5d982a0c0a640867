package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a catalog entry: a stocked product or a billable service. The
// entry screens read it to seed cart lines and never write through it.
type Item struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name         string         `gorm:"size:255;not null;index" json:"name"`
	Code         string         `gorm:"size:100;unique;not null" json:"code"`
	Description  string         `gorm:"type:text" json:"description"`
	Unit         string         `gorm:"size:50;default:'pcs'" json:"unit"`
	SaleRate     float64        `gorm:"type:decimal(15,2);default:0" json:"sale_rate"`
	PurchaseRate float64        `gorm:"type:decimal(15,2);default:0" json:"purchase_rate"`
	TaxPercent   float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	Stock        float64        `gorm:"type:decimal(15,2);default:0" json:"stock"`
	LowStockAt   float64        `gorm:"type:decimal(15,2);default:0" json:"low_stock_at"`
	IsService    bool           `gorm:"default:false" json:"is_service"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// Category groups catalog items for the picker on the entry screens
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
