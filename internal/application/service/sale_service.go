package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/cart"
	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
	"github.com/mainak-github/sk-electricks-api/pkg/pagination"
	"github.com/mainak-github/sk-electricks-api/pkg/utils"
)

// SaleService handles sales order entry: cart pricing, persistence and
// stock movements for completed sales.
type SaleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository, itemRepo repository.ItemRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, customerRepo: customerRepo, itemRepo: itemRepo}
}

// loadItems fetches the catalog entries referenced by the input lines
func (s *SaleService) loadItems(ctx context.Context, lines []DocumentLineInput) (map[uuid.UUID]entity.Item, error) {
	items, err := s.itemRepo.GetByIDs(ctx, lineItemIDs(lines))
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

// CreateSale prices the submitted cart and persists it. A sale created
// in Complete status decrements stock for its catalog product lines.
func (s *SaleService) CreateSale(ctx context.Context, input *DocumentInput) (*entity.Sale, error) {
	if input.PartyID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.PartyID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if input.PartyName == "" {
			input.PartyName = customer.Name
		}
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(input, items, func(it entity.Item) float64 { return it.SaleRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = utils.GenerateDocumentNo("INV")
	}

	sale := saleFromDocument(doc, input)

	if sale.Status == enum.DocumentStatusComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, stockDeltas(doc.Lines, items, -1)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		if sale.Status == enum.DocumentStatusComplete {
			reverseStock(ctx, s.itemRepo, stockDeltas(doc.Lines, items, -1))
		}
		return nil, err
	}

	return sale, nil
}

// UpdateSale reprices and replaces an existing sale. If the sale was
// already Complete its old stock movement is reversed before the new
// lines are applied.
func (s *SaleService) UpdateSale(ctx context.Context, id uuid.UUID, input *DocumentInput) (*entity.Sale, error) {
	existing, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if !input.IsAdmin && existing.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.PartyID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.PartyID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if input.PartyName == "" {
			input.PartyName = customer.Name
		}
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(input, items, func(it entity.Item) float64 { return it.SaleRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = existing.SaleNo
	}

	var oldDeltas map[uuid.UUID]float64
	if existing.Status == enum.DocumentStatusComplete {
		oldDeltas, err = s.storedDeltas(ctx, existing.Lines)
		if err != nil {
			return nil, err
		}
	}
	var newDeltas map[uuid.UUID]float64
	if input.Status == enum.DocumentStatusComplete {
		newDeltas = stockDeltas(doc.Lines, items, -1)
	}
	// one batch: a failed swap leaves the existing movement untouched
	net := netDeltas(newDeltas, oldDeltas)
	if err := applyStockOrFail(ctx, s.itemRepo, net); err != nil {
		return nil, err
	}

	sale := saleFromDocument(doc, input)
	sale.ID = existing.ID
	sale.UserID = existing.UserID
	sale.CreatedAt = existing.CreatedAt

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		reverseStock(ctx, s.itemRepo, net)
		return nil, err
	}
	return sale, nil
}

// GetSale retrieves a sale with its lines
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales for the given user
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.Result[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(sales, pag), nil
}

// ListDueSales lists sales that still have an outstanding balance
func (s *SaleService) ListDueSales(ctx context.Context, userID uuid.UUID, params *pagination.Params) (*pagination.Result[entity.Sale], error) {
	sales, total, err := s.saleRepo.ListDue(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Page, params.PerPage, total)
	return pagination.NewResult(sales, pag), nil
}

// UpdateStatus moves a sale between workflow states. Entering Complete
// applies the stock movement; leaving it reverses the movement.
func (s *SaleService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, isAdmin bool, status enum.DocumentStatus) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if !isAdmin && sale.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if sale.Status == status {
		return sale, nil
	}

	deltas, err := s.storedDeltas(ctx, sale.Lines)
	if err != nil {
		return nil, err
	}

	wasComplete := sale.Status == enum.DocumentStatusComplete
	nowComplete := status == enum.DocumentStatusComplete
	if !wasComplete && nowComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, deltas); err != nil {
			return nil, err
		}
	}
	if wasComplete && !nowComplete {
		reverseStock(ctx, s.itemRepo, deltas)
	}

	if err := s.saleRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	sale.Status = status
	return sale, nil
}

// PayDue records an additional payment against a sale. Lines and totals
// are untouched; only paid and due move, and due may go negative when
// the customer overpays.
func (s *SaleService) PayDue(ctx context.Context, userID, id uuid.UUID, isAdmin bool, amount float64) (*entity.Sale, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if !isAdmin && sale.UserID != userID {
		return nil, apperror.ErrForbidden
	}

	sale.Paid = money.Round2(sale.Paid + amount)
	sale.Due = money.Round2(sale.GrandTotal - sale.Paid)

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes a sale. A Complete sale gives its stock back first.
func (s *SaleService) DeleteSale(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	if !isAdmin && sale.UserID != userID {
		return apperror.ErrForbidden
	}

	if sale.Status == enum.DocumentStatusComplete {
		deltas, err := s.storedDeltas(ctx, sale.Lines)
		if err != nil {
			return err
		}
		reverseStock(ctx, s.itemRepo, deltas)
	}

	return s.saleRepo.Delete(ctx, id)
}

// storedDeltas rebuilds the consuming stock movement from persisted lines
func (s *SaleService) storedDeltas(ctx context.Context, lines []entity.SaleLine) (map[uuid.UUID]float64, error) {
	var ids []uuid.UUID
	for _, l := range lines {
		if l.ItemID != nil {
			ids = append(ids, *l.ItemID)
		}
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	deltas := make(map[uuid.UUID]float64)
	for _, l := range lines {
		if l.ItemID == nil {
			continue
		}
		item, ok := byID[*l.ItemID]
		if !ok || item.IsService {
			continue
		}
		deltas[*l.ItemID] += -l.Quantity
	}
	return deltas, nil
}

// saleFromDocument maps a priced cart snapshot onto the sale entity
func saleFromDocument(doc cart.Document, input *DocumentInput) *entity.Sale {
	sale := &entity.Sale{
		UserID:       input.UserID,
		CustomerID:   doc.Header.PartyID,
		SaleNo:       doc.Header.Number,
		Date:         doc.Header.Date,
		Status:       input.Status,
		PaymentMode:  doc.Header.PaymentMode,
		CustomerName: doc.Header.PartyName,
		Note:         doc.Header.Note,

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
		sale.Lines = append(sale.Lines, entity.SaleLine{
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

	return sale
}
