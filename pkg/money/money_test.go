package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 212.4, 212.4},
		{"half up", 1.005, 1.01},
		{"truncating tail", 2.344, 2.34},
		{"rounding tail", 2.345, 2.35},
		{"negative half away from zero", -1.005, -1.01},
		{"zero", 0, 0},
		{"nan becomes zero", math.NaN(), 0},
		{"positive infinity becomes zero", math.Inf(1), 0},
		{"negative infinity becomes zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", "100", 100},
		{"decimal", "10.5", 10.5},
		{"whitespace", "  42  ", 42},
		{"negative", "-7.25", -7.25},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"trailing garbage", "12x", 0},
		{"nan literal", "NaN", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"quoted number", `"12.5"`, 12.5},
		{"null", `null`, 0},
		{"quoted garbage", `"oops"`, 0},
		{"boolean", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.in), &a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Float64())
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	out, err := json.Marshal(Amount(99.9))
	require.NoError(t, err)
	assert.Equal(t, "99.9", string(out))
}
