package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

func sampleHeader() Header {
	partyID := uuid.New()
	return Header{
		Number:      "SO-1A2B3C4D",
		Date:        time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		PartyID:     &partyID,
		PartyName:   "Dutta Hardware",
		PaymentMode: enum.PaymentModeCash,
		Note:        "deliver friday",
	}
}

func TestSnapshotRoundsOnceAtTheBoundary(t *testing.T) {
	c := New()
	c.Add(CatalogItem{ID: uuid.New(), Name: "Fan regulator", Rate: 33.335}, 3, 7.5, 18)

	doc := Snapshot(c.Lines(), Adjustments{Method: enum.PricingMethodPerItem}, sampleHeader())

	require.Len(t, doc.Lines, 1)
	line := doc.Lines[0]
	// base 100.005, discount 7.500375, taxable 92.504625, tax 16.6508325
	assert.Equal(t, 33.34, line.UnitRate)
	assert.Equal(t, 7.5, line.DiscountAmount)
	assert.Equal(t, 16.65, line.TaxAmount)
	assert.Equal(t, 109.16, line.Total)

	// stored subtotal is the sum of the stored line totals
	assert.Equal(t, 109.16, doc.Totals.SubTotal)
	assert.Equal(t, 109.16, doc.Totals.GrandTotal)
}

func TestSnapshotCarriesAbsoluteLineAmounts(t *testing.T) {
	// downstream invoice rendering reads the amounts directly, so the
	// payload must carry them alongside the percentages
	c := New()
	c.Add(wirePack(), 2, 10, 18)

	doc := Snapshot(c.Lines(), Adjustments{}, sampleHeader())

	line := doc.Lines[0]
	assert.Equal(t, 10.0, line.DiscountPercent)
	assert.Equal(t, 20.0, line.DiscountAmount)
	assert.Equal(t, 18.0, line.TaxPercent)
	assert.Equal(t, 32.4, line.TaxAmount)
}

func TestRoundTripIsIdempotent(t *testing.T) {
	c := New()
	c.Add(wirePack(), 2, 10, 18)
	c.Add(CatalogItem{ID: uuid.New(), Name: "Switch board", Rate: 79.99, TaxPercent: 12}, 1, 0, 12)
	adj := Adjustments{
		Method:        enum.PricingMethodPerItem,
		TransportCost: 50,
		Paid:          100,
	}

	saved := Snapshot(c.Lines(), adj, sampleHeader())

	// load for editing, then save again without touching anything
	lines, restoredAdj := Restore(saved)
	resaved := Snapshot(lines, restoredAdj, saved.Header)

	assert.Equal(t, saved.Totals, resaved.Totals)
	assert.Equal(t, saved.Adjustments, resaved.Adjustments)
	require.Len(t, resaved.Lines, len(saved.Lines))
	for i := range saved.Lines {
		assert.Equal(t, saved.Lines[i], resaved.Lines[i])
	}
}

func TestRestoreTrustsStoredAmounts(t *testing.T) {
	// a hand-adjusted ledger row survives the load untouched even though
	// a recompute would produce different figures
	doc := Document{
		Lines: []Line{{
			ID:              uuid.New(),
			ItemID:          uuid.New(),
			Name:            "Service call",
			Quantity:        1,
			UnitRate:        500,
			DiscountPercent: 10,
			DiscountAmount:  60, // not 10% of 500
			TaxAmount:       0,
			Total:           440,
		}},
		Adjustments: Adjustments{Paid: 440},
	}

	lines, adj := Restore(doc)

	require.Len(t, lines, 1)
	assert.Equal(t, 60.0, lines[0].DiscountAmount)
	assert.Equal(t, 440.0, lines[0].Total)
	assert.Equal(t, 440.0, adj.Paid)

	totals := Recompute(lines, adj)
	assert.Equal(t, 440.0, totals.SubTotal)
	assert.Equal(t, 0.0, totals.Due)
}

func TestRestoreThenEditRederivesTheLine(t *testing.T) {
	doc := Snapshot([]Line{{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		Name:     "Starter coil",
		Quantity: 2,
		UnitRate: 100,
		Total:    200,
	}}, Adjustments{}, sampleHeader())

	lines, _ := Restore(doc)
	c := Seed(lines)

	c.UpdateQuantity(lines[0].ID, 3)

	got := c.Lines()[0]
	assert.Equal(t, 300.0, got.Total)
}

func TestRestoreAssignsIDsToLegacyLines(t *testing.T) {
	doc := Document{Lines: []Line{{ItemID: uuid.New(), Total: 10}}}
	lines, _ := Restore(doc)
	assert.NotEqual(t, uuid.Nil, lines[0].ID)
}
