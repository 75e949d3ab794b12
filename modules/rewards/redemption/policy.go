package redemption

import (
	"github.com/shopspring/decimal"
)

// Policy คือกติกาการแลก point ฝั่ง server เป็นเจ้าของค่าเหล่านี้
// quote ที่คำนวณจาก policy ถือเป็น source of truth ฝั่ง client แค่ mirror
type Policy struct {
	// ExchangeRate จำนวนเงินต่อ 1 point (ดู CalculateFinalAmount)
	ExchangeRate decimal.Decimal
	// CapFraction สัดส่วนสูงสุดของมูลค่า order ที่ใช้ point แทนได้ (0-1)
	CapFraction decimal.Decimal
	// RecommendedFraction สัดส่วนของ max ที่ pre-select ให้ user
	RecommendedFraction decimal.Decimal
	// EarnRate สัดส่วนของยอดจ่ายจริงที่สะสมกลับเป็น point
	EarnRate decimal.Decimal
}

// Quote คือ snapshot ของเพดานการแลก point สำหรับ workshop + ราคาหนึ่งคู่
// สร้างใหม่ทุกครั้งที่เริ่ม flow การแลก ใช้เสร็จแล้วทิ้ง
type Quote struct {
	ExchangeRate          decimal.Decimal
	WorkshopAmount        decimal.Decimal
	MaxRedeemablePoints   decimal.Decimal
	RecommendedRedemption decimal.Decimal
	CanRedeem             bool
	Message               string
}

// ComputeQuote คำนวณเพดานการแลก point จากยอดคงเหลือกับราคา workshop
//
// maxRedeemablePoints = min(availableBalance, capFraction × workshopAmount / exchangeRate)
// ปัดลงเป็นจำนวนเต็ม point เสมอ เพื่อให้ invariant
// recommended ≤ max ≤ min(balance, cap) เป็นจริงทุกกรณี
func (p Policy) ComputeQuote(availableBalance, workshopAmount decimal.Decimal) Quote {
	quote := Quote{
		ExchangeRate:   p.ExchangeRate,
		WorkshopAmount: workshopAmount,
	}

	if !availableBalance.IsPositive() {
		quote.Message = "No reward points available yet. Book workshops to start earning!"
		return quote
	}

	// แปลงเพดานมูลค่าเงินกลับเป็นจำนวน point
	maxByCap := workshopAmount.Mul(p.CapFraction).Div(p.ExchangeRate)

	maxPoints := decimal.Min(availableBalance, maxByCap).RoundDown(0)
	if !maxPoints.IsPositive() {
		quote.Message = "Reward points cannot be applied to this workshop."
		return quote
	}

	quote.MaxRedeemablePoints = maxPoints
	quote.RecommendedRedemption = maxPoints.Mul(p.RecommendedFraction).RoundDown(0)
	quote.CanRedeem = true
	return quote
}

// ClampPoints ปรับค่าที่ user เลือกให้อยู่ในช่วง [0, max] และปัดเป็นจำนวนเต็ม point
// ใช้กฎเดียวกันทั้ง slider, quick-select และการ set ตรง ๆ
func ClampPoints(points, maxPoints decimal.Decimal) decimal.Decimal {
	points = points.Round(0)
	if points.IsNegative() {
		return decimal.Zero
	}
	if points.GreaterThan(maxPoints) {
		return maxPoints
	}
	return points
}
