package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poolhire/internal/domains/booking/pricing"
	"poolhire/internal/domains/extra/model"
)

func TestTotal(t *testing.T) {
	catalog := map[string]int64{
		"cleaning": 1000,
		"towels":   500,
	}

	tests := []struct {
		name      string
		basePrice int64
		selected  []string
		want      int64
	}{
		{
			name:      "base price with two extras",
			basePrice: 5000,
			selected:  []string{"cleaning", "towels"},
			want:      6500,
		},
		{
			name:      "order does not matter",
			basePrice: 5000,
			selected:  []string{"towels", "cleaning"},
			want:      6500,
		},
		{
			name:      "no extras",
			basePrice: 5000,
			selected:  nil,
			want:      5000,
		},
		{
			name:      "unknown extra contributes zero",
			basePrice: 5000,
			selected:  []string{"cleaning", "sauna"},
			want:      6000,
		},
		{
			name:      "zero base price",
			basePrice: 0,
			selected:  []string{"towels"},
			want:      500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.Total(tt.basePrice, tt.selected, catalog))
		})
	}
}

func TestTotal_Idempotent(t *testing.T) {
	catalog := map[string]int64{"cleaning": 1000}
	selected := []string{"cleaning"}

	first := pricing.Total(5000, selected, catalog)
	second := pricing.Total(5000, selected, catalog)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"cleaning"}, selected)
	assert.Equal(t, map[string]int64{"cleaning": 1000}, catalog)
}

func TestCatalog(t *testing.T) {
	catalog := pricing.Catalog([]model.Extra{
		{ID: "cleaning", Name: "Cleaning", Price: 1000},
		{ID: "towels", Name: "Towels", Price: 500},
	})

	assert.Equal(t, map[string]int64{"cleaning": 1000, "towels": 500}, catalog)
	assert.Empty(t, pricing.Catalog(nil))
}
