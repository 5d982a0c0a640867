package cart

import (
	"github.com/mainak-github/sk-electricks-api/internal/domain/enum"
	"github.com/mainak-github/sk-electricks-api/pkg/money"
)

// Adjustments are the document-level figures that sit outside the line
// items: transport cost, a document-wide discount/tax (absolute and
// percent-of-subtotal), the pricing method and the amount already paid.
type Adjustments struct {
	Method           enum.PricingMethod `json:"method"`
	TransportCost    float64            `json:"transport_cost"`
	DiscountPercent  float64            `json:"discount_percent"`
	DiscountAbsolute float64            `json:"discount_absolute"`
	TaxPercent       float64            `json:"tax_percent"`
	TaxAbsolute      float64            `json:"tax_absolute"`
	Paid             float64            `json:"paid"`
}

// Totals are fully derived figures. There is no mutation path for them
// other than recomputing from lines and adjustments.
type Totals struct {
	SubTotal      float64 `json:"sub_total"`
	TotalDiscount float64 `json:"total_discount"`
	TotalTax      float64 `json:"total_tax"`
	GrandTotal    float64 `json:"grand_total"`
	Due           float64 `json:"due"`
}

// Recompute derives document totals from the current lines and
// adjustments. It is a pure function: same inputs, same outputs, and the
// line order does not matter.
//
// With PricingMethodOnTotal the document discount applies to the
// subtotal and the document tax to what remains after the discount. With
// PricingMethodPerItem discount and tax are already folded into each
// line total and the document-level fields are ignored; applying them
// again would double-count.
//
// Due is not clamped: paying more than the grand total leaves a negative
// due, i.e. change owed to the party.
func Recompute(lines []Line, adj Adjustments) Totals {
	var cartSubtotal float64
	for _, l := range lines {
		cartSubtotal += money.Sanitize(l.Total)
	}

	subTotal := cartSubtotal + money.Sanitize(adj.TransportCost)

	var totalDiscount, totalTax float64
	if adj.Method == enum.PricingMethodOnTotal {
		totalDiscount = money.Sanitize(adj.DiscountAbsolute) + subTotal*money.Sanitize(adj.DiscountPercent)/100
		totalTax = money.Sanitize(adj.TaxAbsolute) + (subTotal-totalDiscount)*money.Sanitize(adj.TaxPercent)/100
	}

	grandTotal := subTotal - totalDiscount + totalTax

	return Totals{
		SubTotal:      subTotal,
		TotalDiscount: totalDiscount,
		TotalTax:      totalTax,
		GrandTotal:    grandTotal,
		Due:           grandTotal - money.Sanitize(adj.Paid),
	}
}
