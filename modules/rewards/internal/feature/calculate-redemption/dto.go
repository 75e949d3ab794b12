package calculateredemption

import (
	"nachna/shared/common/errs"

	"github.com/shopspring/decimal"
)

type CalculateRedemptionRequest struct {
	WorkshopID     int64           `json:"workshop_id"`
	WorkshopAmount decimal.Decimal `json:"workshop_amount"`
}

func (r CalculateRedemptionRequest) Validate() error {
	if r.WorkshopID <= 0 {
		return errs.InputValidationError("workshop_id is required")
	}
	if r.WorkshopAmount.IsNegative() {
		return errs.InputValidationError("workshop_amount must not be negative")
	}
	return nil
}

// CalculateRedemptionQuery เป็น query ภายในโมดูล ไม่ได้อยู่ใน contract
// เพราะโมดูลอื่นไม่ต้องขอ quote เอง
type CalculateRedemptionQuery struct {
	UserID string
	CalculateRedemptionRequest
}

type CalculateRedemptionResponse struct {
	ExchangeRate          decimal.Decimal `json:"exchange_rate"`
	WorkshopAmount        decimal.Decimal `json:"workshop_amount"`
	MaxRedeemablePoints   decimal.Decimal `json:"max_redeemable_points"`
	RecommendedRedemption decimal.Decimal `json:"recommended_redemption"`
	CanRedeem             bool            `json:"can_redeem"`
	Message               string          `json:"message,omitempty"`
}
