package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents how a document was (or will be) paid
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeOnline PaymentMode = 1
	PaymentModeCard   PaymentMode = 2
	PaymentModeCredit PaymentMode = 3
)

func (p PaymentMode) String() string {
	names := [...]string{"Cash", "Online", "Card", "Credit"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Cash"
	}
	return names[p]
}

func (p PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentMode(i)
		return nil
	}
	switch str {
	case "Online":
		*p = PaymentModeOnline
	case "Card":
		*p = PaymentModeCard
	case "Credit":
		*p = PaymentModeCredit
	default:
		*p = PaymentModeCash
	}
	return nil
}

func (p PaymentMode) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentMode(v)
	case int:
		*p = PaymentMode(v)
	}
	return nil
}
