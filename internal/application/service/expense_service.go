package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/cart"
	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// ExpenseService handles expense voucher entry. Vouchers go through the
// same pricing engine as the other screens but never move stock.
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, supplierRepo repository.SupplierRepository, itemRepo repository.ItemRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, supplierRepo: supplierRepo, itemRepo: itemRepo}
}

func (s *ExpenseService) resolveSupplier(ctx context.Context, input *DocumentInput) error {
	if input.PartyID == nil {
		return nil
	}
	supplier, err := s.supplierRepo.GetByID(ctx, *input.PartyID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	if input.PartyName == "" {
		input.PartyName = supplier.Name
	}
	return nil
}

func (s *ExpenseService) buildVoucher(ctx context.Context, input *DocumentInput) (cart.Document, error) {
	items, err := s.itemRepo.GetByIDs(ctx, lineItemIDs(input.Lines))
	if err != nil {
		return cart.Document{}, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return buildDocument(input, byID, func(it entity.Item) float64 { return it.PurchaseRate })
}

// CreateExpense prices the submitted voucher and persists it
func (s *ExpenseService) CreateExpense(ctx context.Context, input *DocumentInput) (*entity.ExpenseVoucher, error) {
	if err := s.resolveSupplier(ctx, input); err != nil {
		return nil, err
	}

	doc, err := s.buildVoucher(ctx, input)
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = utils.GenerateDocumentNo("EXP")
	}

	voucher := expenseFromDocument(doc, input)
	if err := s.expenseRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// UpdateExpense reprices and replaces an existing voucher
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *DocumentInput) (*entity.ExpenseVoucher, error) {
	existing, err := s.expenseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}
	if !input.IsAdmin && existing.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if err := s.resolveSupplier(ctx, input); err != nil {
		return nil, err
	}

	doc, err := s.buildVoucher(ctx, input)
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = existing.VoucherNo
	}

	voucher := expenseFromDocument(doc, input)
	voucher.ID = existing.ID
	voucher.UserID = existing.UserID
	voucher.CreatedAt = existing.CreatedAt

	if err := s.expenseRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// GetExpense retrieves a voucher with its lines
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.ExpenseVoucher, error) {
	voucher, err := s.expenseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}
	return voucher, nil
}

// ListExpenses lists vouchers for the given user
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.Result[entity.ExpenseVoucher], error) {
	vouchers, total, err := s.expenseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(vouchers, pag), nil
}

// UpdateStatus moves a voucher between workflow states
func (s *ExpenseService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, isAdmin bool, status enum.DocumentStatus) (*entity.ExpenseVoucher, error) {
	voucher, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Expense voucher")
	}
	if !isAdmin && voucher.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	if err := s.expenseRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	voucher.Status = status
	return voucher, nil
}

// DeleteExpense removes a voucher
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	voucher, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if voucher == nil {
		return apperror.NewNotFoundError("Expense voucher")
	}
	if !isAdmin && voucher.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.expenseRepo.Delete(ctx, id)
}

// expenseFromDocument maps a priced cart snapshot onto the voucher entity
func expenseFromDocument(doc cart.Document, input *DocumentInput) *entity.ExpenseVoucher {
	voucher := &entity.ExpenseVoucher{
		UserID:      input.UserID,
		SupplierID:  doc.Header.PartyID,
		VoucherNo:   doc.Header.Number,
		Date:        doc.Header.Date,
		Status:      input.Status,
		PaymentMode: doc.Header.PaymentMode,
		PayeeName:   doc.Header.PartyName,
		Note:        doc.Header.Note,

		PricingMethod:   doc.Adjustments.Method,
		TransportCost:   doc.Adjustments.TransportCost,
		DiscountPercent: doc.Adjustments.DiscountPercent,
		DiscountAmount:  doc.Adjustments.DiscountAbsolute,
		TaxPercent:      doc.Adjustments.TaxPercent,
		TaxAmount:       doc.Adjustments.TaxAbsolute,

		SubTotal:      doc.Totals.SubTotal,
		TotalDiscount: doc.Totals.TotalDiscount,
		TotalTax:      doc.Totals.TotalTax,
		GrandTotal:    doc.Totals.GrandTotal,
		Paid:          doc.Adjustments.Paid,
		Due:           doc.Totals.Due,
	}

	for i, l := range doc.Lines {
		var itemID *uuid.UUID
		if l.ItemID != uuid.Nil {
			id := l.ItemID
			itemID = &id
		}
		voucher.Lines = append(voucher.Lines, entity.ExpenseLine{
			ItemID:          itemID,
			ItemName:        l.Name,
			Description:     l.Description,
			Quantity:        l.Quantity,
			UnitRate:        l.UnitRate,
			DiscountPercent: l.DiscountPercent,
			DiscountAmount:  l.DiscountAmount,
			TaxPercent:      l.TaxPercent,
			TaxAmount:       l.TaxAmount,
			Total:           l.Total,
			Position:        i,
		})
	}

	return voucher
}
