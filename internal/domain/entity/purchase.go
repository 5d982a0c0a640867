package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

// Purchase represents a purchase order raised against a supplier
type Purchase struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`

	PurchaseNo   string              `gorm:"size:100;unique;not null" json:"purchase_no"`
	Date         time.Time           `gorm:"type:date;not null" json:"date"`
	Status       enum.DocumentStatus `gorm:"default:0" json:"status"`
	PaymentMode  enum.PaymentMode    `gorm:"default:0" json:"payment_mode"`
	SupplierName string              `gorm:"size:255" json:"supplier_name"`
	Note         string              `gorm:"type:text" json:"note"`

	PricingMethod   enum.PricingMethod `gorm:"default:0" json:"pricing_method"`
	TransportCost   float64            `gorm:"type:decimal(15,2);default:0" json:"transport_cost"`
	DiscountPercent float64            `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	DiscountAmount  float64            `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxPercent      float64            `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount       float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`

	SubTotal      float64 `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	TotalDiscount float64 `gorm:"type:decimal(15,2);default:0" json:"total_discount"`
	TotalTax      float64 `gorm:"type:decimal(15,2);default:0" json:"total_tax"`
	GrandTotal    float64 `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Paid          float64 `gorm:"type:decimal(15,2);default:0" json:"paid"`
	Due           float64 `gorm:"type:decimal(15,2);default:0" json:"due"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseLine is one cart row of a purchase
type PurchaseLine struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID  `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ItemID     *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

	ItemName        string  `gorm:"size:255;not null" json:"item_name"`
	Description     string  `gorm:"type:text" json:"description"`
	Quantity        float64 `gorm:"type:decimal(15,2);not null" json:"quantity"`
	UnitRate        float64 `gorm:"type:decimal(15,2);not null" json:"unit_rate"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	DiscountAmount  float64 `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxPercent      float64 `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount       float64 `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total           float64 `gorm:"type:decimal(15,2);not null" json:"total"`
	Position        int     `gorm:"default:0" json:"position"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Item     *Item    `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase line
func (pl *PurchaseLine) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == uuid.Nil {
		pl.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseLine model
func (PurchaseLine) TableName() string {
	return "purchase_lines"
}
