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

// PurchaseService handles purchase order entry. Completed purchases add
// stock, the mirror image of the sale flow.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, supplierRepo repository.SupplierRepository, itemRepo repository.ItemRepository) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo, itemRepo: itemRepo}
}

func (s *PurchaseService) loadItems(ctx context.Context, lines []DocumentLineInput) (map[uuid.UUID]entity.Item, error) {
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

func (s *PurchaseService) resolveSupplier(ctx context.Context, input *DocumentInput) error {
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

// CreatePurchase prices the submitted cart and persists it. A purchase
// created in Complete status adds the received quantities to stock.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *DocumentInput) (*entity.Purchase, error) {
	if err := s.resolveSupplier(ctx, input); err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(input, items, func(it entity.Item) float64 { return it.PurchaseRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = utils.GenerateDocumentNo("PO")
	}

	purchase := purchaseFromDocument(doc, input)

	if purchase.Status == enum.DocumentStatusComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, stockDeltas(doc.Lines, items, 1)); err != nil {
			return nil, err
		}
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		if purchase.Status == enum.DocumentStatusComplete {
			reverseStock(ctx, s.itemRepo, stockDeltas(doc.Lines, items, 1))
		}
		return nil, err
	}

	return purchase, nil
}

// UpdatePurchase reprices and replaces an existing purchase, reversing
// and reapplying stock when the purchase is Complete.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, input *DocumentInput) (*entity.Purchase, error) {
	existing, err := s.purchaseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	if !input.IsAdmin && existing.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if err := s.resolveSupplier(ctx, input); err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	doc, err := buildDocument(input, items, func(it entity.Item) float64 { return it.PurchaseRate })
	if err != nil {
		return nil, err
	}

	if doc.Header.Number == "" {
		doc.Header.Number = existing.PurchaseNo
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
		newDeltas = stockDeltas(doc.Lines, items, 1)
	}
	// one batch: a failed swap leaves the existing movement untouched
	net := netDeltas(newDeltas, oldDeltas)
	if err := applyStockOrFail(ctx, s.itemRepo, net); err != nil {
		return nil, err
	}

	purchase := purchaseFromDocument(doc, input)
	purchase.ID = existing.ID
	purchase.UserID = existing.UserID
	purchase.CreatedAt = existing.CreatedAt

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		reverseStock(ctx, s.itemRepo, net)
		return nil, err
	}
	return purchase, nil
}

// GetPurchase retrieves a purchase with its lines
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases for the given user
func (s *PurchaseService) ListPurchases(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) (*pagination.Result[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(purchases, pag), nil
}

// UpdateStatus moves a purchase between workflow states. Entering
// Complete receives the stock; leaving it hands the stock back.
func (s *PurchaseService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, isAdmin bool, status enum.DocumentStatus) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	if !isAdmin && purchase.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	if purchase.Status == status {
		return purchase, nil
	}

	deltas, err := s.storedDeltas(ctx, purchase.Lines)
	if err != nil {
		return nil, err
	}

	wasComplete := purchase.Status == enum.DocumentStatusComplete
	nowComplete := status == enum.DocumentStatusComplete
	if !wasComplete && nowComplete {
		if err := applyStockOrFail(ctx, s.itemRepo, deltas); err != nil {
			return nil, err
		}
	}
	if wasComplete && !nowComplete {
		reverseStock(ctx, s.itemRepo, deltas)
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	purchase.Status = status
	return purchase, nil
}

// DeletePurchase removes a purchase. A Complete purchase takes its
// received stock back out first.
func (s *PurchaseService) DeletePurchase(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	purchase, err := s.purchaseRepo.GetWithLines(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}
	if !isAdmin && purchase.UserID != userID {
		return apperror.ErrForbidden
	}

	if purchase.Status == enum.DocumentStatusComplete {
		deltas, err := s.storedDeltas(ctx, purchase.Lines)
		if err != nil {
			return err
		}
		reverseStock(ctx, s.itemRepo, deltas)
	}

	return s.purchaseRepo.Delete(ctx, id)
}

// storedDeltas rebuilds the receiving stock movement from persisted lines
func (s *PurchaseService) storedDeltas(ctx context.Context, lines []entity.PurchaseLine) (map[uuid.UUID]float64, error) {
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
		deltas[*l.ItemID] += l.Quantity
	}
	return deltas, nil
}

// purchaseFromDocument maps a priced cart snapshot onto the purchase entity
func purchaseFromDocument(doc cart.Document, input *DocumentInput) *entity.Purchase {
	purchase := &entity.Purchase{
		UserID:       input.UserID,
		SupplierID:   doc.Header.PartyID,
		PurchaseNo:   doc.Header.Number,
		Date:         doc.Header.Date,
		Status:       input.Status,
		PaymentMode:  doc.Header.PaymentMode,
		SupplierName: doc.Header.PartyName,
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
		purchase.Lines = append(purchase.Lines, entity.PurchaseLine{
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

	return purchase
}
