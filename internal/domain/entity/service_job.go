package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

// ServiceJob represents a service entry: repair or installation work
// billed to a customer. Lines may reference catalog services or be
// free-text labour entries, and quantities can be fractional hours.
type ServiceJob struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`

	JobNo        string              `gorm:"size:100;unique;not null" json:"job_no"`
	Date         time.Time           `gorm:"type:date;not null" json:"date"`
	Status       enum.DocumentStatus `gorm:"default:0" json:"status"`
	PaymentMode  enum.PaymentMode    `gorm:"default:0" json:"payment_mode"`
	CustomerName string              `gorm:"size:255" json:"customer_name"`
	DeviceInfo   string              `gorm:"size:255" json:"device_info"`
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
	User     User             `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []ServiceJobLine `gorm:"foreignKey:ServiceJobID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new service job
func (sj *ServiceJob) BeforeCreate(tx *gorm.DB) error {
	if sj.ID == uuid.Nil {
		sj.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceJob model
func (ServiceJob) TableName() string {
	return "service_jobs"
}

// ServiceJobLine is one billed row of a service job
type ServiceJobLine struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ServiceJobID uuid.UUID  `gorm:"type:uuid;not null;index" json:"service_job_id"`
	ItemID       *uuid.UUID `gorm:"type:uuid;index" json:"item_id,omitempty"`

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
	ServiceJob ServiceJob `gorm:"foreignKey:ServiceJobID" json:"-"`
	Item       *Item      `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new service job line
func (sl *ServiceJobLine) BeforeCreate(tx *gorm.DB) error {
	if sl.ID == uuid.Nil {
		sl.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ServiceJobLine model
func (ServiceJobLine) TableName() string {
	return "service_job_lines"
}
