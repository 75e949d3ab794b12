package model

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAmountPrefersCurrentPrice(t *testing.T) {
	w := Workshop{
		CurrentPrice: decimal.NullDecimal{Decimal: decimal.NewFromInt(1200), Valid: true},
		PricingInfo:  sql.NullString{String: "₹9,999 early bird", Valid: true},
	}

	amount, err := w.ResolveAmount()
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(1200)))
}

func TestResolveAmountFallsBackToPricingInfo(t *testing.T) {
	tests := []struct {
		name    string
		pricing string
		want    string
	}{
		{"plain number", "1500", "1500"},
		{"currency prefix", "₹1500 per person", "1500"},
		{"comma separated", "₹1,500.50", "1500.50"},
		{"number in sentence", "Early bird at 999 until Friday", "999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Workshop{
				PricingInfo: sql.NullString{String: tt.pricing, Valid: true},
			}

			amount, err := w.ResolveAmount()
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.want)), "got %s", amount)
		})
	}
}

func TestResolveAmountNoUsablePrice(t *testing.T) {
	tests := []struct {
		name string
		w    Workshop
	}{
		{"both empty", Workshop{}},
		{"pricing info without number", Workshop{
			PricingInfo: sql.NullString{String: "contact studio for price", Valid: true},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.w.ResolveAmount()
			assert.ErrorIs(t, err, ErrNoUsableAmount)
		})
	}
}
