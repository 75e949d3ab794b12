package redeem

import (
	"nachna/shared/common/errs"

	"github.com/shopspring/decimal"
)

type RedeemRequest struct {
	WorkshopID  int64           `json:"workshop_id"`
	Points      decimal.Decimal `json:"points"`
	OrderAmount decimal.Decimal `json:"order_amount"`
}

func (r RedeemRequest) Validate() error {
	if r.WorkshopID <= 0 {
		return errs.InputValidationError("workshop_id is required")
	}
	if !r.Points.IsPositive() {
		return errs.InputValidationError("points must be greater than 0")
	}
	if r.OrderAmount.IsNegative() {
		return errs.InputValidationError("order_amount must not be negative")
	}
	return nil
}

type RedeemResponse struct {
	TransactionID  int64           `json:"transaction_id"`
	PointsRedeemed decimal.Decimal `json:"points_redeemed"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}
