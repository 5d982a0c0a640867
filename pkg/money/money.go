// Package money holds the monetary value helpers shared by the pricing
// engine and the HTTP layer: sanitizing untrusted numeric input, fixed
// two-decimal rounding and a lenient JSON number type.
package money

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize maps NaN and infinities to zero. Arithmetic on one bad input
// must not poison every figure derived from it.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds to two decimal places, half away from zero. All stored
// monetary columns go through this exactly once, at snapshot time.
func Round2(v float64) float64 {
	v = Sanitize(v)
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Parse reads a numeric field the way the entry screens do: trims
// whitespace, accepts a leading currency-free number, and treats
// anything unparseable as zero rather than failing the whole form.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Sanitize(v)
}

// Amount is a float64 that unmarshals leniently: JSON numbers, quoted
// numbers, null and garbage strings all decode without error, with
// anything unusable becoming zero.
type Amount float64

// Float64 returns the underlying value
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(Parse(s))
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(Sanitize(v))
	return nil
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(Sanitize(float64(a)))
}
