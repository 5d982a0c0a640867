package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
)

// PartyFilterParams represents filtering options for customers/suppliers
type PartyFilterParams struct {
	Pagination *pagination.Params
	Search     string
	SortBy     string
	SortOrder  string
}

// CustomerRepository defines customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Customer, int64, error)
}

// SupplierRepository defines supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Supplier, int64, error)
}
