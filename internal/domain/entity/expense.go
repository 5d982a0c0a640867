package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

// ExpenseVoucher records outgoing money that is not a stock purchase:
// rent, transport, utilities. Lines are usually free text rather than
// catalog references.
type ExpenseVoucher struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`

	VoucherNo   string              `gorm:"size:100;unique;not null" json:"voucher_no"`
	Date        time.Time           `gorm:"type:date;not null" json:"date"`
	Status      enum.DocumentStatus `gorm:"default:0" json:"status"`
	PaymentMode enum.PaymentMode    `gorm:"default:0" json:"payment_mode"`
	PayeeName   string              `gorm:"size:255" json:"payee_name"`
	Note        string              `gorm:"type:text" json:"note"`

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
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Supplier *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Lines    []ExpenseLine `gorm:"foreignKey:VoucherID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense voucher
func (e *ExpenseVoucher) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseVoucher model
func (ExpenseVoucher) TableName() string {
	return "expense_vouchers"
}

// ExpenseLine is one row of an expense voucher
type ExpenseLine struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	VoucherID uuid.UUID  `gorm:"type:uuid;not null;index" json:"voucher_id"`
	ItemID    *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

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
	Voucher ExpenseVoucher `gorm:"foreignKey:VoucherID" json:"-"`
	Item    *Item          `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense line
func (el *ExpenseLine) BeforeCreate(tx *gorm.DB) error {
	if el.ID == uuid.Nil {
		el.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseLine model
func (ExpenseLine) TableName() string {
	return "expense_lines"
}
