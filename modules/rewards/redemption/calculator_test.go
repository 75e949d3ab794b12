package redemption

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateFinalAmount(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		points       string
		rate         string
		wantDiscount string
		wantFinal    string
		wantSavings  string
	}{
		{"one rupee per point", "1000", "300", "1", "300", "700", "300"},
		{"zero points is a no-op", "1000", "0", "1", "0", "1000", "0"},
		{"fractional rate", "1000", "500", "0.5", "250", "750", "250"},
		{"points worth more than order clamps to zero", "100", "500", "1", "500", "0", "100"},
		{"exact zero-out", "500", "500", "1", "500", "0", "500"},
		{"zero amount order", "0", "100", "1", "100", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := CalculateFinalAmount(d(tt.amount), d(tt.points), d(tt.rate))
			require.NoError(t, err)

			assert.True(t, calc.Discount.Equal(d(tt.wantDiscount)), "discount = %s", calc.Discount)
			assert.True(t, calc.FinalAmount.Equal(d(tt.wantFinal)), "final = %s", calc.FinalAmount)
			assert.True(t, calc.Savings.Equal(d(tt.wantSavings)), "savings = %s", calc.Savings)
			// ยอดจ่ายจริงต้องไม่เกินราคาเต็มและไม่ติดลบ
			assert.False(t, calc.FinalAmount.GreaterThan(d(tt.amount)))
			assert.False(t, calc.FinalAmount.IsNegative())
		})
	}
}

func TestCalculateFinalAmountInvalidInput(t *testing.T) {
	_, err := CalculateFinalAmount(d("-1"), d("0"), d("1"))
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = CalculateFinalAmount(d("100"), d("-1"), d("1"))
	assert.ErrorIs(t, err, ErrNegativePoints)

	_, err = CalculateFinalAmount(d("100"), d("10"), d("0"))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestCalculateFinalAmountKeepsPrecision(t *testing.T) {
	calc, err := CalculateFinalAmount(d("999.99"), d("3"), d("0.33"))
	require.NoError(t, err)

	// ค่า decimal ข้างในต้องไม่ถูกปัด
	assert.True(t, calc.Discount.Equal(d("0.99")))
	assert.True(t, calc.FinalAmount.Equal(d("999")))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹700", FormatCurrency(d("700")))
	assert.Equal(t, "₹1000", FormatCurrency(d("999.5")))
	assert.Equal(t, "₹999", FormatCurrency(d("999.4")))
}
