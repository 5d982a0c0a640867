package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	domainRepo "github.com/mainak-github/sk-electricks-api/internal/domain/repository"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense voucher repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *expenseRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *expenseRepository) GetByNumber(ctx context.Context, voucherNo string) (*entity.ExpenseVoucher, error) {
	var voucher entity.ExpenseVoucher
	err := r.db.WithContext(ctx).First(&voucher, "voucher_no = ?", voucherNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

// Update replaces the document and its lines wholesale, same contract
// as the sale repository.
func (r *expenseRepository) Update(ctx context.Context, voucher *entity.ExpenseVoucher) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("voucher_id = ?", voucher.ID).Delete(&entity.ExpenseLine{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Lines").Save(voucher).Error; err != nil {
			return err
		}
		if len(voucher.Lines) == 0 {
			return nil
		}
		for i := range voucher.Lines {
			voucher.Lines[i].VoucherID = voucher.ID
		}
		return tx.Create(&voucher.Lines).Error
	})
}

func (r *expenseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DocumentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.ExpenseVoucher{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseVoucher{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.DocumentFilterParams) ([]entity.ExpenseVoucher, int64, error) {
	var vouchers []entity.ExpenseVoucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ExpenseVoucher{})
	if !params.SkipUserFilter {
		query = query.Where("user_id = ?", userID)
	}

	if params.Search != "" {
		query = query.Where("voucher_no ILIKE ? OR payee_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.PartyID != nil {
		query = query.Where("supplier_id = ?", *params.PartyID)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Order(orderClause(params.SortBy, params.SortOrder, expenseSortColumns)).
		Find(&vouchers).Error

	return vouchers, total, err
}
