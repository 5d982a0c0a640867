package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

// Sale represents a sales order. The monetary columns mirror the cart
// snapshot exactly: per-line amounts plus document-level adjustments and
// rolled-up totals, so the invoice surface can read stored figures
// without recomputing anything.
type Sale struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	SaleNo       string              `gorm:"size:100;unique;not null" json:"sale_no"`
	Date         time.Time           `gorm:"type:date;not null" json:"date"`
	Status       enum.DocumentStatus `gorm:"default:0" json:"status"`
	PaymentMode  enum.PaymentMode    `gorm:"default:0" json:"payment_mode"`
	CustomerName string              `gorm:"size:255" json:"customer_name"`
	Note         string              `gorm:"type:text" json:"note"`

	// Document-level adjustments
	PricingMethod   enum.PricingMethod `gorm:"default:0" json:"pricing_method"`
	TransportCost   float64            `gorm:"type:decimal(15,2);default:0" json:"transport_cost"`
	DiscountPercent float64            `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	DiscountAmount  float64            `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxPercent      float64            `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount       float64            `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`

	// Stored totals, always equal to a recompute from the lines
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
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleLine is one cart row of a sale. Position preserves entry order.
type SaleLine struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SaleID uuid.UUID  `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemID *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

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
	Sale Sale  `gorm:"foreignKey:SaleID" json:"-"`
	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale line
func (sl *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}
