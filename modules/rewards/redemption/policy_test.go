package redemption

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPolicy() Policy {
	return Policy{
		ExchangeRate:        decimal.NewFromInt(1),
		CapFraction:         decimal.NewFromInt(1),
		RecommendedFraction: decimal.NewFromInt(1),
		EarnRate:            d("0.05"),
	}
}

func TestComputeQuoteBalanceLimits(t *testing.T) {
	// ตาม scenario หลัก: order 1000, balance 500, rate 1, cap 100%
	quote := testPolicy().ComputeQuote(d("500"), d("1000"))

	assert.True(t, quote.CanRedeem)
	assert.True(t, quote.MaxRedeemablePoints.Equal(d("500")))
	assert.True(t, quote.RecommendedRedemption.Equal(d("500")))
}

func TestComputeQuoteCapLimits(t *testing.T) {
	policy := testPolicy()
	policy.CapFraction = d("0.5")

	quote := policy.ComputeQuote(d("10000"), d("1000"))

	// เพดานมาจาก cap ไม่ใช่ balance
	assert.True(t, quote.MaxRedeemablePoints.Equal(d("500")))
}

func TestComputeQuoteZeroBalance(t *testing.T) {
	quote := testPolicy().ComputeQuote(decimal.Zero, d("1000"))

	assert.False(t, quote.CanRedeem)
	assert.True(t, quote.MaxRedeemablePoints.IsZero())
	assert.True(t, quote.RecommendedRedemption.IsZero())
	assert.NotEmpty(t, quote.Message)
}

func TestComputeQuoteFractionalRateRoundsDown(t *testing.T) {
	policy := testPolicy()
	policy.ExchangeRate = d("3")

	// 1000 / 3 = 333.33... ต้องปัดลงเป็นจำนวนเต็ม point
	quote := policy.ComputeQuote(d("10000"), d("1000"))

	assert.True(t, quote.MaxRedeemablePoints.Equal(d("333")))
}

func TestComputeQuoteInvariant(t *testing.T) {
	policy := testPolicy()
	policy.RecommendedFraction = d("0.5")

	quote := policy.ComputeQuote(d("120"), d("1000"))

	// recommended ≤ max ≤ min(balance, cap × amount / rate)
	assert.False(t, quote.RecommendedRedemption.GreaterThan(quote.MaxRedeemablePoints))
	assert.False(t, quote.MaxRedeemablePoints.GreaterThan(d("120")))
}

func TestClampPoints(t *testing.T) {
	max := d("500")

	assert.True(t, ClampPoints(d("300"), max).Equal(d("300")))
	assert.True(t, ClampPoints(d("9999"), max).Equal(max), "above max clamps, never errors")
	assert.True(t, ClampPoints(d("-10"), max).IsZero())
	assert.True(t, ClampPoints(d("250.6"), max).Equal(d("251")), "quantized to whole points")
}
