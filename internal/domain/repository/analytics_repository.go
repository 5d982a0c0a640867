package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardStats is the aggregate snapshot shown on the landing screen
type DashboardStats struct {
	SalesTotal     float64 `json:"sales_total"`
	PurchaseTotal  float64 `json:"purchase_total"`
	ServiceTotal   float64 `json:"service_total"`
	ExpenseTotal   float64 `json:"expense_total"`
	OutstandingDue float64 `json:"outstanding_due"`
	SalesCount     int64   `json:"sales_count"`
	PurchaseCount  int64   `json:"purchase_count"`
	LowStockItems  int64   `json:"low_stock_items"`
}

// AnalyticsRepository runs the aggregate queries behind the dashboard
type AnalyticsRepository interface {
	Stats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*DashboardStats, error)
}
