package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poolhire/internal/domains/payment/fee"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		bps        int64
		unit       int64
		wantFee    int64
		wantPayout int64
	}{
		{
			name:       "pence granularity",
			amount:     6500,
			bps:        1000,
			unit:       1,
			wantFee:    650,
			wantPayout: 5850,
		},
		{
			name:       "pound granularity rounds half up",
			amount:     6500,
			bps:        1000,
			unit:       100,
			wantFee:    700,
			wantPayout: 5800,
		},
		{
			name:       "pence half rounds up",
			amount:     65,
			bps:        1000,
			unit:       1,
			wantFee:    7,
			wantPayout: 58,
		},
		{
			name:       "below half rounds down",
			amount:     64,
			bps:        1000,
			unit:       1,
			wantFee:    6,
			wantPayout: 58,
		},
		{
			name:       "zero amount",
			amount:     0,
			bps:        1000,
			unit:       1,
			wantFee:    0,
			wantPayout: 0,
		},
		{
			name:       "unit below one is treated as one",
			amount:     1234,
			bps:        1000,
			unit:       0,
			wantFee:    123,
			wantPayout: 1111,
		},
		{
			name:       "fee never exceeds amount",
			amount:     40,
			bps:        1000,
			unit:       100,
			wantFee:    0,
			wantPayout: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFee, gotPayout := fee.Split(tt.amount, tt.bps, tt.unit)

			assert.Equal(t, tt.wantFee, gotFee)
			assert.Equal(t, tt.wantPayout, gotPayout)
		})
	}
}

func TestSplit_SumsToAmount(t *testing.T) {
	for _, unit := range []int64{1, 5, 100} {
		for amount := int64(0); amount <= 20000; amount += 7 {
			gotFee, gotPayout := fee.Split(amount, 1000, unit)

			assert.Equal(t, amount, gotFee+gotPayout)
			assert.GreaterOrEqual(t, gotFee, int64(0))
			assert.GreaterOrEqual(t, gotPayout, int64(0))
		}
	}
}

func TestToMinor(t *testing.T) {
	assert.Equal(t, int64(6500), fee.ToMinor(65))
	assert.Equal(t, int64(1999), fee.ToMinor(19.99))
	assert.Equal(t, int64(1), fee.ToMinor(0.005))
	assert.Equal(t, int64(0), fee.ToMinor(0))
}
