package cart

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mainak-github/sk-electricks-api/pkg/money"
)

func wirePack() CatalogItem {
	return CatalogItem{
		ID:          uuid.New(),
		Name:        "Copper Wire 1.5mm",
		Description: "90m coil",
		Rate:        100,
		TaxPercent:  18,
	}
}

func TestAddComputesLineBreakdown(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 2, 10, 18)

	// qty 2 @ 100, 10% discount, 18% tax
	assert.Equal(t, 20.0, line.DiscountAmount)
	assert.InDelta(t, 32.4, line.TaxAmount, 1e-9)
	assert.InDelta(t, 212.4, line.Total, 1e-9)
	assert.Equal(t, 1, c.Len())
}

func TestAddDuplicateIncrementsQuantity(t *testing.T) {
	c := New()
	item := wirePack()

	c.Add(item, 1, 0, 18)
	line := c.Add(item, 5, 0, 18) // requested qty ignored for an existing line

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2.0, line.Quantity)
	assert.Equal(t, 236.0, line.Total) // 200 + 18%
}

func TestAddMatchesByItemIDNotName(t *testing.T) {
	c := New()
	a := wirePack()
	b := wirePack() // same name, different catalog identity
	b.ID = uuid.New()

	c.Add(a, 1, 0, 0)
	c.Add(b, 1, 0, 0)

	assert.Equal(t, 2, c.Len())
}

func TestAddDefaultsNonPositiveQuantityToOne(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 0, 0, 0)
	assert.Equal(t, 1.0, line.Quantity)
}

func TestUpdateQuantityRecomputes(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 2, 10, 18)

	ok := c.UpdateQuantity(line.ID, 3)
	require.True(t, ok)

	got := c.Lines()[0]
	assert.Equal(t, 30.0, got.DiscountAmount)
	assert.InDelta(t, 48.6, got.TaxAmount, 1e-9)
	assert.InDelta(t, 318.6, got.Total, 1e-9)
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []float64{0, -1} {
		c := New()
		line := c.Add(wirePack(), 2, 0, 0)

		ok := c.UpdateQuantity(line.ID, qty)

		assert.True(t, ok)
		assert.Equal(t, 0, c.Len(), "qty %v must behave exactly like Remove", qty)
	}
}

func TestUpdateDiscountPercentTouchesOnlyThatLine(t *testing.T) {
	c := New()
	first := c.Add(wirePack(), 1, 0, 0)
	second := c.Add(CatalogItem{ID: uuid.New(), Name: "MCB 16A", Rate: 250}, 1, 0, 0)

	c.UpdateDiscountPercent(first.ID, 50)

	lines := c.Lines()
	assert.Equal(t, 50.0, lines[0].Total)
	assert.Equal(t, 250.0, lines[1].Total)
	_ = second
}

func TestMalformedPercentBehavesLikeZero(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 2, 10, 18)

	// a garbage field on the screen parses to 0, never NaN
	c.UpdateDiscountPercent(line.ID, money.Parse("abc"))
	viaParse := c.Lines()[0]

	c2 := New()
	line2 := c2.Add(wirePack(), 2, 10, 18)
	c2.UpdateDiscountPercent(line2.ID, 0)
	viaZero := c2.Lines()[0]

	assert.Equal(t, viaZero.DiscountAmount, viaParse.DiscountAmount)
	assert.Equal(t, viaZero.Total, viaParse.Total)
}

func TestNaNInputsDoNotPoisonTheLine(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 2, 0, 0)

	c.UpdateTaxPercent(line.ID, math.NaN())

	got := c.Lines()[0]
	assert.False(t, math.IsNaN(got.TaxAmount))
	assert.Equal(t, 200.0, got.Total)
}

func TestUpdateDescriptionLeavesMoneyAlone(t *testing.T) {
	c := New()
	line := c.Add(wirePack(), 2, 10, 18)

	c.UpdateDescription(line.ID, "rewound coil, clearance")

	got := c.Lines()[0]
	assert.Equal(t, "rewound coil, clearance", got.Description)
	assert.Equal(t, 212.4, got.Total)
}

func TestRemoveLeavesOtherLinesUntouched(t *testing.T) {
	c := New()
	first := c.Add(wirePack(), 1, 0, 0)
	c.Add(CatalogItem{ID: uuid.New(), Name: "Holder", Rate: 30}, 4, 0, 0)

	require.True(t, c.Remove(first.ID))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 120.0, c.Lines()[0].Total)

	assert.False(t, c.Remove(first.ID), "second remove of the same line is a no-op")
}

func TestResetEmptiesCart(t *testing.T) {
	c := New()
	c.Add(wirePack(), 1, 0, 0)
	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestUpdateOnUnknownLineReportsFalse(t *testing.T) {
	c := New()
	c.Add(wirePack(), 1, 0, 0)

	assert.False(t, c.UpdateQuantity(uuid.New(), 2))
	assert.False(t, c.UpdateDiscountPercent(uuid.New(), 5))
	assert.False(t, c.UpdateTaxPercent(uuid.New(), 5))
	assert.False(t, c.UpdateDescription(uuid.New(), "x"))
}
