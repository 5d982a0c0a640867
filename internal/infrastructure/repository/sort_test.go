package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"allowed column default direction", "date", "", "date DESC"},
		{"allowed column ascending", "grand_total", "asc", "grand_total ASC"},
		{"allowed column uppercase ascending", "sale_no", "ASC", "sale_no ASC"},
		{"empty falls back", "", "", "created_at DESC"},
		{"unknown column falls back", "grand_total; DROP TABLE sales--", "ASC", "created_at ASC"},
		{"unknown direction falls back", "date", "sideways", "date DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortOrder, saleSortColumns))
		})
	}
}
