package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingMethod selects how discount and tax percentages are applied to a
// document: baked into each line, or once against the cart subtotal.
// The two are mutually exclusive: with PerItem the document-level
// discount/tax fields contribute nothing to the grand total.
type PricingMethod int

const (
	PricingMethodPerItem PricingMethod = 0
	PricingMethodOnTotal PricingMethod = 1
)

func (m PricingMethod) String() string {
	names := [...]string{"PerItem", "OnTotal"}
	if int(m) < 0 || int(m) >= len(names) {
		return "PerItem"
	}
	return names[m]
}

func (m PricingMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PricingMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PricingMethod(i)
		return nil
	}
	switch str {
	case "OnTotal":
		*m = PricingMethodOnTotal
	default:
		*m = PricingMethodPerItem
	}
	return nil
}

func (m PricingMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PricingMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PricingMethodPerItem
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PricingMethod(v)
	case int:
		*m = PricingMethod(v)
	}
	return nil
}
