package checkout

import (
	"nachna/shared/common/errs"

	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	WorkshopID     int64           `json:"workshop_id"`
	PointsToRedeem decimal.Decimal `json:"points_to_redeem"`
}

func (r CheckoutRequest) Validate() error {
	if r.WorkshopID <= 0 {
		return errs.InputValidationError("workshop_id is required")
	}
	if r.PointsToRedeem.IsNegative() {
		return errs.InputValidationError("points_to_redeem must not be negative")
	}
	return nil
}

type CheckoutCommand struct {
	UserID string
	CheckoutRequest
}

type CheckoutResponse struct {
	OrderID        int64           `json:"order_id"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	PointsRedeemed decimal.Decimal `json:"points_redeemed"`
	PaymentRef     string          `json:"payment_ref"`
	QRCodeURL      string          `json:"qr_code_url"`
}
