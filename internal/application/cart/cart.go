// Package cart holds the pricing core shared by the purchase, sale,
// service and expense entry screens: an ordered collection of line items,
// the aggregation of those lines into document totals, and the mapping
// between in-memory cart state and a persisted document. Everything in
// this package is pure computation; I/O and user-facing errors live in
// the service layer.
package cart

import (
	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/pkg/money"
)

// CatalogItem is the read-only catalog shape handed to Add. The cart
// copies what it needs and never mutates the catalog record.
type CatalogItem struct {
	ID          uuid.UUID
	Name        string
	Description string
	Rate        float64
	TaxPercent  float64
}

// Line is one cart entry. DiscountAmount, TaxAmount and Total are
// derived from the other fields and are never set independently while
// the line is being edited; on a loaded document they carry the stored
// values until the user touches the line again.
type Line struct {
	ID              uuid.UUID `json:"id"`
	ItemID          uuid.UUID `json:"item_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Quantity        float64   `json:"quantity"`
	UnitRate        float64   `json:"unit_rate"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountAmount  float64   `json:"discount_amount"`
	TaxPercent      float64   `json:"tax_percent"`
	TaxAmount       float64   `json:"tax_amount"`
	Total           float64   `json:"total"`
}

// recompute rebuilds the derived monetary fields:
//
//	base     = quantity * rate
//	discount = base * discountPercent / 100
//	tax      = (base - discount) * taxPercent / 100
//	total    = (base - discount) + tax
//
// Percent inputs only; absolute discount/tax adjustments exist at the
// document level, not per line.
func (l *Line) recompute() {
	base := money.Sanitize(l.Quantity) * money.Sanitize(l.UnitRate)
	l.DiscountAmount = base * money.Sanitize(l.DiscountPercent) / 100
	taxable := base - l.DiscountAmount
	l.TaxAmount = taxable * money.Sanitize(l.TaxPercent) / 100
	l.Total = taxable + l.TaxAmount
}

// NewLine builds a fully computed line from raw inputs. itemID may be
// uuid.Nil for free-text rows that reference no catalog entry.
func NewLine(itemID uuid.UUID, name, description string, quantity, unitRate, discountPercent, taxPercent float64) Line {
	l := Line{
		ID:              uuid.New(),
		ItemID:          itemID,
		Name:            name,
		Description:     description,
		Quantity:        money.Sanitize(quantity),
		UnitRate:        money.Sanitize(unitRate),
		DiscountPercent: money.Sanitize(discountPercent),
		TaxPercent:      money.Sanitize(taxPercent),
	}
	l.recompute()
	return l
}

// Cart owns the ordered line items of the document being edited.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Seed replaces the cart contents with previously persisted lines. The
// stored amounts are kept verbatim; nothing is recomputed until a line
// is actually edited.
func Seed(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, len(lines))}
	copy(c.lines, lines)
	return c
}

// Add puts a catalog item into the cart. Adding an item that is already
// present bumps the existing line's quantity by one unit instead of
// creating a second row. Matching is by item ID, not display name.
func (c *Cart) Add(item CatalogItem, quantity, discountPercent, taxPercent float64) Line {
	if quantity <= 0 {
		quantity = 1
	}

	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			c.lines[i].recompute()
			return c.lines[i]
		}
	}

	line := Line{
		ID:              uuid.New(),
		ItemID:          item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Quantity:        quantity,
		UnitRate:        money.Sanitize(item.Rate),
		DiscountPercent: money.Sanitize(discountPercent),
		TaxPercent:      money.Sanitize(taxPercent),
	}
	line.recompute()
	c.lines = append(c.lines, line)
	return line
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line, never leaves a zero-quantity row behind.
func (c *Cart) UpdateQuantity(lineID uuid.UUID, quantity float64) bool {
	if quantity <= 0 {
		return c.Remove(lineID)
	}
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = quantity
			c.lines[i].recompute()
			return true
		}
	}
	return false
}

// UpdateDiscountPercent sets a line's discount percentage and recomputes
// that line only; other lines are independent.
func (c *Cart) UpdateDiscountPercent(lineID uuid.UUID, percent float64) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].DiscountPercent = money.Sanitize(percent)
			c.lines[i].recompute()
			return true
		}
	}
	return false
}

// UpdateTaxPercent sets a line's tax percentage and recomputes it
func (c *Cart) UpdateTaxPercent(lineID uuid.UUID, percent float64) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].TaxPercent = money.Sanitize(percent)
			c.lines[i].recompute()
			return true
		}
	}
	return false
}

// UpdateDescription sets a line's free-text description. No monetary
// field depends on it, so nothing is recomputed.
func (c *Cart) UpdateDescription(lineID uuid.UUID, text string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Description = text
			return true
		}
	}
	return false
}

// Remove deletes a line from the cart
func (c *Cart) Remove(lineID uuid.UUID) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// Reset empties the cart
func (c *Cart) Reset() {
	c.lines = nil
}

// Lines returns a copy of the cart contents in entry order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart
func (c *Cart) Len() int {
	return len(c.lines)
}
