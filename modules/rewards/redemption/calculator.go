package redemption

import (
	"nachna/shared/common/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount = errs.BusinessRuleError("original amount must not be negative")
	ErrNegativePoints = errs.BusinessRuleError("points to redeem must not be negative")
	ErrInvalidRate    = errs.BusinessRuleError("exchange rate must be greater than 0")
)

// Calculation คือผลการคำนวณส่วนลดจากการแลก point หนึ่งครั้ง
// ค่า decimal ข้างในไม่ถูกปัดเศษ การปัดทำเฉพาะตอนแสดงผลเท่านั้น
type Calculation struct {
	Discount    decimal.Decimal
	FinalAmount decimal.Decimal
	Savings     decimal.Decimal
}

// CalculateFinalAmount คำนวณส่วนลดและยอดที่ต้องจ่ายจริงจากจำนวน point ที่เลือก
//
// exchangeRate ใช้ convention เดียวกันทั้งระบบคือ "จำนวนเงินต่อ 1 point"
// ดังนั้น discount = pointsToRedeem × exchangeRate
// ยอดจ่ายจริงถูก clamp ไว้ที่ 0 เสมอ แม้ point จะเกินมูลค่า order
//
// เป็น pure function เรียกซ้ำกี่ครั้งก็ได้ เช่น ทุกครั้งที่ slider ขยับ
func CalculateFinalAmount(originalAmount, pointsToRedeem, exchangeRate decimal.Decimal) (Calculation, error) {
	if originalAmount.IsNegative() {
		return Calculation{}, ErrNegativeAmount
	}
	if pointsToRedeem.IsNegative() {
		return Calculation{}, ErrNegativePoints
	}
	if !exchangeRate.IsPositive() {
		return Calculation{}, ErrInvalidRate
	}

	discount := pointsToRedeem.Mul(exchangeRate)

	finalAmount := originalAmount.Sub(discount)
	if finalAmount.IsNegative() {
		finalAmount = decimal.Zero
	}

	// savings จะเท่ากับ discount เว้นแต่โดน clamp ที่ 0
	savings := originalAmount.Sub(finalAmount)

	return Calculation{
		Discount:    discount,
		FinalAmount: finalAmount,
		Savings:     savings,
	}, nil
}

// FormatCurrency ปัดเป็นจำนวนเต็มสำหรับแสดงผลเท่านั้น
func FormatCurrency(v decimal.Decimal) string {
	return "₹" + v.Round(0).String()
}
