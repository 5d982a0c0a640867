package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
)

// SettingsService handles the business profile shown on invoices
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's business profile, falling back to an
// empty profile with defaults when none has been saved yet.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.Settings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &entity.Settings{UserID: userID, CurrencySymbol: "₹"}, nil
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	UserID         uuid.UUID
	BusinessName   string
	Address        string
	Phone          string
	Email          string
	GSTIN          string
	CurrencySymbol string
	InvoiceFooter  string
}

// UpdateSettings upserts the user's business profile
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{UserID: input.UserID}
	}

	settings.BusinessName = input.BusinessName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.GSTIN = input.GSTIN
	settings.InvoiceFooter = input.InvoiceFooter
	if input.CurrencySymbol != "" {
		settings.CurrencySymbol = input.CurrencySymbol
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
