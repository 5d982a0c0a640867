package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
)

// DocumentFilterParams represents filtering options shared by the four
// document list screens.
type DocumentFilterParams struct {
	Pagination     *pagination.Params
	Search         string
	Status         *enum.DocumentStatus
	PartyID        *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool
}

// SaleRepository defines sales order data access. Update replaces the
// document and its lines in one transaction; stored lines are the
// round-trip source of truth, so partial line updates do not exist.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByNumber(ctx context.Context, saleNo string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.Sale, int64, error)
	ListDue(ctx context.Context, userID uuid.UUID, params *pagination.Params) ([]entity.Sale, int64, error)
}

// PurchaseRepository defines purchase order data access
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	GetByNumber(ctx context.Context, purchaseNo string) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.Purchase, int64, error)
}

// ServiceJobRepository defines service entry data access
type ServiceJobRepository interface {
	Create(ctx context.Context, job *entity.ServiceJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceJob, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ServiceJob, error)
	GetByNumber(ctx context.Context, jobNo string) (*entity.ServiceJob, error)
	Update(ctx context.Context, job *entity.ServiceJob) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.ServiceJob, int64, error)
}

// ExpenseRepository defines expense voucher data access
type ExpenseRepository interface {
	Create(ctx context.Context, voucher *entity.ExpenseVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error)
	GetByNumber(ctx context.Context, voucherNo string) (*entity.ExpenseVoucher, error)
	Update(ctx context.Context, voucher *entity.ExpenseVoucher) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *DocumentFilterParams) ([]entity.ExpenseVoucher, int64, error)
}
