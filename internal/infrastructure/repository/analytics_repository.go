package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	domainRepo "github.com/mainak-github/sk-electricks-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Stats aggregates document totals for the dashboard. Cancelled
// documents never count; outstanding due spans sales and service jobs
// since both collect money from customers.
func (r *analyticsRepository) Stats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}
	db := r.db.WithContext(ctx)
	cancelled := enum.DocumentStatusCancelled

	type sumRow struct {
		Total float64
		Due   float64
		Count int64
	}

	var sales sumRow
	err := db.Model(&entity.Sale{}).
		Select("COALESCE(SUM(grand_total), 0) AS total, COALESCE(SUM(due), 0) AS due, COUNT(*) AS count").
		Where("user_id = ? AND status <> ? AND date BETWEEN ? AND ?", userID, cancelled, from, to).
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	stats.SalesTotal = sales.Total
	stats.SalesCount = sales.Count

	var purchases sumRow
	err = db.Model(&entity.Purchase{}).
		Select("COALESCE(SUM(grand_total), 0) AS total, COUNT(*) AS count").
		Where("user_id = ? AND status <> ? AND date BETWEEN ? AND ?", userID, cancelled, from, to).
		Scan(&purchases).Error
	if err != nil {
		return nil, err
	}
	stats.PurchaseTotal = purchases.Total
	stats.PurchaseCount = purchases.Count

	var services sumRow
	err = db.Model(&entity.ServiceJob{}).
		Select("COALESCE(SUM(grand_total), 0) AS total, COALESCE(SUM(due), 0) AS due").
		Where("user_id = ? AND status <> ? AND date BETWEEN ? AND ?", userID, cancelled, from, to).
		Scan(&services).Error
	if err != nil {
		return nil, err
	}
	stats.ServiceTotal = services.Total

	var expenses sumRow
	err = db.Model(&entity.ExpenseVoucher{}).
		Select("COALESCE(SUM(grand_total), 0) AS total").
		Where("user_id = ? AND status <> ? AND date BETWEEN ? AND ?", userID, cancelled, from, to).
		Scan(&expenses).Error
	if err != nil {
		return nil, err
	}
	stats.ExpenseTotal = expenses.Total

	// Due is outstanding regardless of the reporting window
	var outstanding struct {
		Sales   float64
		Service float64
	}
	err = db.Raw(`
		SELECT
			(SELECT COALESCE(SUM(due), 0) FROM sales
				WHERE user_id = ? AND status <> ? AND due > 0 AND deleted_at IS NULL) AS sales,
			(SELECT COALESCE(SUM(due), 0) FROM service_jobs
				WHERE user_id = ? AND status <> ? AND due > 0 AND deleted_at IS NULL) AS service
	`, userID, cancelled, userID, cancelled).Scan(&outstanding).Error
	if err != nil {
		return nil, err
	}
	stats.OutstandingDue = outstanding.Sales + outstanding.Service

	err = db.Model(&entity.Item{}).
		Where("stock <= low_stock_at AND is_service = false").
		Count(&stats.LowStockItems).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
