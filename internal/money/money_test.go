package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "$0.00"},
		{name: "cents only", cents: 7, want: "$0.07"},
		{name: "negative cents", cents: -50, want: "-$0.50"},
		{name: "thousands", cents: 123456, want: "$1,234.56"},
		{name: "negative thousands", cents: -123456, want: "-$1,234.56"},
		{name: "millions", cents: 100000000, want: "$1,000,000.00"},
		{name: "under a thousand", cents: 99999, want: "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCents(tt.cents))
		})
	}
}

func TestFormat_RoundsToCents(t *testing.T) {
	assert.Equal(t, "$12.35", Format(decimal.RequireFromString("12.345")))
	assert.Equal(t, "$1,200.00", Format(decimal.NewFromInt(1200)))
}

func TestFromCents(t *testing.T) {
	assert.True(t, FromCents(1050).Equal(decimal.NewFromFloat(10.5)))
}
