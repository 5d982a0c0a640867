package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
)

// Header carries the non-monetary fields of a document: its number,
// date, the customer or supplier it belongs to, and bookkeeping notes.
type Header struct {
	Number      string           `json:"number"`
	Date        time.Time        `json:"date"`
	PartyID     *uuid.UUID       `json:"party_id,omitempty"`
	PartyName   string           `json:"party_name"`
	PaymentMode enum.PaymentMode `json:"payment_mode"`
	Note        string           `json:"note"`
}

// Document is the persistable snapshot of a cart: header, lines with
// their absolute discount/tax amounts (the rendering layer reads those
// directly and recomputes nothing), adjustments and rolled-up totals.
type Document struct {
	Header      Header      `json:"header"`
	Lines       []Line      `json:"lines"`
	Adjustments Adjustments `json:"adjustments"`
	Totals      Totals      `json:"totals"`
}

// Snapshot flattens cart state into a Document. This is the one place
// monetary values are rounded: each line is fixed to 2 decimals half-up,
// and the totals are recomputed from the rounded lines so that the
// stored subtotal is exactly the sum of the stored line totals. Printed
// line amounts and the printed subtotal therefore always reconcile, and
// snapshotting a restored document reproduces identical figures.
func Snapshot(lines []Line, adj Adjustments, header Header) Document {
	rounded := make([]Line, len(lines))
	for i, l := range lines {
		l.UnitRate = money.Round2(l.UnitRate)
		l.DiscountAmount = money.Round2(l.DiscountAmount)
		l.TaxAmount = money.Round2(l.TaxAmount)
		l.Total = money.Round2(l.Total)
		rounded[i] = l
	}

	adj.TransportCost = money.Round2(adj.TransportCost)
	adj.DiscountAbsolute = money.Round2(adj.DiscountAbsolute)
	adj.TaxAbsolute = money.Round2(adj.TaxAbsolute)
	adj.Paid = money.Round2(adj.Paid)

	totals := Recompute(rounded, adj)
	totals.SubTotal = money.Round2(totals.SubTotal)
	totals.TotalDiscount = money.Round2(totals.TotalDiscount)
	totals.TotalTax = money.Round2(totals.TotalTax)
	totals.GrandTotal = money.Round2(totals.GrandTotal)
	totals.Due = money.Round2(totals.Due)

	return Document{
		Header:      header,
		Lines:       rounded,
		Adjustments: adj,
		Totals:      totals,
	}
}

// Restore rebuilds cart state from a persisted document. Stored amounts
// are copied verbatim, not recomputed: the ledger is the source of truth
// for a loaded document, and derived fields are only re-derived once the
// user actually edits a line.
func Restore(doc Document) ([]Line, Adjustments) {
	lines := make([]Line, len(doc.Lines))
	copy(lines, doc.Lines)
	for i := range lines {
		if lines[i].ID == uuid.Nil {
			lines[i].ID = uuid.New()
		}
	}
	return lines, doc.Adjustments
}
