package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
)

func TestRecomputePerItemWorkedExample(t *testing.T) {
	// item: qty 2 @ 100, 10% discount, 18% tax -> line total 212.4;
	// transport 50, paid 100
	c := New()
	c.Add(wirePack(), 2, 10, 18)

	totals := Recompute(c.Lines(), Adjustments{
		Method:        enum.PricingMethodPerItem,
		TransportCost: 50,
		Paid:          100,
	})

	assert.Equal(t, 262.4, totals.SubTotal)
	assert.Equal(t, 0.0, totals.TotalDiscount)
	assert.Equal(t, 0.0, totals.TotalTax)
	assert.Equal(t, 262.4, totals.GrandTotal)
	assert.InDelta(t, 162.4, totals.Due, 1e-9)
}

func TestRecomputeOnTotalAppliesDocumentAdjustmentsOnce(t *testing.T) {
	// two plain lines, 1000 together; 5% + 50 discount on the subtotal,
	// 18% tax on what remains after the discount
	lines := []Line{
		{ID: uuid.New(), Quantity: 2, UnitRate: 250, Total: 500},
		{ID: uuid.New(), Quantity: 1, UnitRate: 500, Total: 500},
	}
	totals := Recompute(lines, Adjustments{
		Method:           enum.PricingMethodOnTotal,
		DiscountPercent:  5,
		DiscountAbsolute: 50,
		TaxPercent:       18,
	})

	assert.Equal(t, 1000.0, totals.SubTotal)
	assert.Equal(t, 100.0, totals.TotalDiscount) // 50 + 5% of 1000
	assert.Equal(t, 162.0, totals.TotalTax)      // 18% of 900
	assert.Equal(t, 1062.0, totals.GrandTotal)
	assert.Equal(t, 1062.0, totals.Due)
}

func TestRecomputePerItemIgnoresDocumentDiscountAndTax(t *testing.T) {
	// per-item documents carry their discount/tax inside the lines; the
	// document-level fields must not be applied a second time
	c := New()
	c.Add(wirePack(), 2, 10, 18)

	totals := Recompute(c.Lines(), Adjustments{
		Method:           enum.PricingMethodPerItem,
		DiscountAbsolute: 25,
		TaxAbsolute:      40,
	})

	assert.Equal(t, 212.4, totals.SubTotal)
	assert.Equal(t, 212.4, totals.GrandTotal)
}

func TestRecomputeEmptyCart(t *testing.T) {
	totals := Recompute(nil, Adjustments{})
	assert.Equal(t, Totals{}, totals)

	withPayment := Recompute(nil, Adjustments{Paid: 100})
	assert.Equal(t, 0.0, withPayment.GrandTotal)
	assert.Equal(t, -100.0, withPayment.Due)
}

func TestRecomputeIsPureAndOrderIndependent(t *testing.T) {
	lines := []Line{
		{ID: uuid.New(), Total: 212.4},
		{ID: uuid.New(), Total: 99.99},
		{ID: uuid.New(), Total: 1250},
	}
	adj := Adjustments{Method: enum.PricingMethodOnTotal, TransportCost: 80, TaxPercent: 18, Paid: 500}

	first := Recompute(lines, adj)
	second := Recompute(lines, adj)
	assert.Equal(t, first, second)

	permuted := []Line{lines[2], lines[0], lines[1]}
	third := Recompute(permuted, adj)
	assert.InDelta(t, first.SubTotal, third.SubTotal, 1e-9)
	assert.InDelta(t, first.GrandTotal, third.GrandTotal, 1e-9)
	assert.InDelta(t, first.Due, third.Due, 1e-9)
}

func TestRecomputeOverpaymentGoesNegative(t *testing.T) {
	lines := []Line{{ID: uuid.New(), Total: 100}}
	totals := Recompute(lines, Adjustments{Paid: 150})
	assert.Equal(t, -50.0, totals.Due)
}
