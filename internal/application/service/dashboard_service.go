package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
)

// DashboardService assembles the landing-screen summary figures
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// GetStats returns aggregate totals for the given date range. A zero
// range defaults to the current month.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*repository.DashboardStats, error) {
	if from.IsZero() && to.IsZero() {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = now
	}
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	return s.analyticsRepo.Stats(ctx, userID, from, to)
}
