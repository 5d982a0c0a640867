package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/application/cart"
	"github.com/mainak-github/sk-electricks-api/internal/domain/entity"
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/internal/domain/repository"
	"github.com/mainak-github/sk-electricks-api/pkg/apperror"
)

// DocumentLineInput is one submitted cart row. ItemID is nil for
// free-text rows; for catalog rows a zero unit rate falls back to the
// item's list rate.
type DocumentLineInput struct {
	ItemID          *uuid.UUID
	Name            string
	Description     string
	Quantity        float64
	UnitRate        float64
	DiscountPercent float64
	TaxPercent      float64
}

// DocumentInput is the shared save payload for the four entry screens.
// Monetary derived fields are never part of the input; they are
// recomputed server-side from these raw figures.
type DocumentInput struct {
	UserID       uuid.UUID
	IsAdmin      bool
	Number       string
	Date         time.Time
	PartyID      *uuid.UUID
	PartyName    string
	PaymentMode  enum.PaymentMode
	Status       enum.DocumentStatus
	Note         string

	PricingMethod    enum.PricingMethod
	TransportCost    float64
	DiscountPercent  float64
	DiscountAbsolute float64
	TaxPercent       float64
	TaxAbsolute      float64
	Paid             float64

	Lines []DocumentLineInput
}

// lineItemIDs collects the catalog IDs referenced by the input lines
func lineItemIDs(lines []DocumentLineInput) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, l := range lines {
		if l.ItemID != nil && !seen[*l.ItemID] {
			seen[*l.ItemID] = true
			ids = append(ids, *l.ItemID)
		}
	}
	return ids
}

// buildDocument runs the submitted lines through the pricing engine and
// returns the rounded, persistable snapshot. rateOf picks which catalog
// rate backs a zero-rate line (sale rate vs purchase rate).
func buildDocument(input *DocumentInput, items map[uuid.UUID]entity.Item, rateOf func(entity.Item) float64) (cart.Document, error) {
	if len(input.Lines) == 0 {
		return cart.Document{}, apperror.ErrEmptyCart
	}

	lines := make([]cart.Line, 0, len(input.Lines))
	for _, li := range input.Lines {
		name := li.Name
		rate := li.UnitRate
		itemID := uuid.Nil

		if li.ItemID != nil {
			item, ok := items[*li.ItemID]
			if !ok {
				return cart.Document{}, apperror.NewNotFoundError("Item")
			}
			itemID = item.ID
			if name == "" {
				name = item.Name
			}
			if rate == 0 {
				rate = rateOf(item)
			}
		}

		if name == "" {
			return cart.Document{}, apperror.NewValidationError([]apperror.FieldError{
				{Field: "lines", Message: "Line item name is required for free-text rows"},
			})
		}

		lines = append(lines, cart.NewLine(itemID, name, li.Description,
			li.Quantity, rate, li.DiscountPercent, li.TaxPercent))
	}

	adj := cart.Adjustments{
		Method:           input.PricingMethod,
		TransportCost:    input.TransportCost,
		DiscountPercent:  input.DiscountPercent,
		DiscountAbsolute: input.DiscountAbsolute,
		TaxPercent:       input.TaxPercent,
		TaxAbsolute:      input.TaxAbsolute,
		Paid:             input.Paid,
	}

	header := cart.Header{
		Number:      input.Number,
		Date:        input.Date,
		PartyID:     input.PartyID,
		PartyName:   input.PartyName,
		PaymentMode: input.PaymentMode,
		Note:        input.Note,
	}

	return cart.Snapshot(lines, adj, header), nil
}

// stockDeltas turns document lines into per-item stock movements.
// direction is -1 for documents that consume stock (sales, service
// parts) and +1 for documents that add it (purchases). Free-text rows
// and catalog services move nothing.
func stockDeltas(lines []cart.Line, items map[uuid.UUID]entity.Item, direction float64) map[uuid.UUID]float64 {
	deltas := make(map[uuid.UUID]float64)
	for _, l := range lines {
		if l.ItemID == uuid.Nil {
			continue
		}
		item, ok := items[l.ItemID]
		if !ok || item.IsService {
			continue
		}
		deltas[l.ItemID] += direction * l.Quantity
	}
	return deltas
}

// netDeltas folds the reversal of a movement being replaced into its
// replacement, so swapping a Complete document's lines moves stock as a
// single batch. A failed swap then leaves the original movement intact
// instead of handing stock back for a document that stays Complete.
func netDeltas(newDeltas, oldDeltas map[uuid.UUID]float64) map[uuid.UUID]float64 {
	net := make(map[uuid.UUID]float64, len(newDeltas)+len(oldDeltas))
	for id, d := range newDeltas {
		net[id] = d
	}
	for id, d := range oldDeltas {
		net[id] -= d
	}
	for id, d := range net {
		if d == 0 {
			delete(net, id)
		}
	}
	return net
}

// applyStockOrFail applies stock deltas and, when any item lacks stock,
// rolls the applied portion back and reports a conflict.
func applyStockOrFail(ctx context.Context, itemRepo repository.ItemRepository, deltas map[uuid.UUID]float64) error {
	if len(deltas) == 0 {
		return nil
	}

	failed, err := itemRepo.AdjustStockBatch(ctx, deltas)
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		return nil
	}

	failedSet := make(map[uuid.UUID]bool, len(failed))
	for _, id := range failed {
		failedSet[id] = true
	}
	revert := make(map[uuid.UUID]float64)
	for id, d := range deltas {
		if !failedSet[id] {
			revert[id] = -d
		}
	}
	if len(revert) > 0 {
		itemRepo.AdjustStockBatch(ctx, revert)
	}

	return apperror.NewConflictError("Insufficient stock for one or more items")
}

// reverseStock undoes previously applied deltas, best effort. A reversal
// that would push stock negative (catalog drifted since the original
// movement) is skipped by the repository guard rather than failing the
// whole operation.
func reverseStock(ctx context.Context, itemRepo repository.ItemRepository, deltas map[uuid.UUID]float64) {
	if len(deltas) == 0 {
		return
	}
	revert := make(map[uuid.UUID]float64, len(deltas))
	for id, d := range deltas {
		revert[id] = -d
	}
	itemRepo.AdjustStockBatch(ctx, revert)
}
