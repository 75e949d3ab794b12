package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nachna/modules/rewards/redemption"

	"github.com/shopspring/decimal"
)

// HTTPLedger คุยกับ rewards API ผ่าน HTTP ใช้ตอน client ฝั่ง checkout
// ไม่ได้รันใน process เดียวกับ server
type HTTPLedger struct {
	client  *http.Client
	baseURL string
	userID  string
}

// NewHTTPLedger สร้าง ledger ที่ชี้ไปยัง base URL ของ API เช่น
// http://localhost:8090/api/v1 โดย userID จะถูกส่งเป็น header ทุก request
func NewHTTPLedger(baseURL, userID string) *HTTPLedger {
	return &HTTPLedger{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		userID:  userID,
	}
}

type calculateRedemptionRequest struct {
	WorkshopID     int64           `json:"workshop_id"`
	WorkshopAmount decimal.Decimal `json:"workshop_amount"`
}

type calculateRedemptionResponse struct {
	ExchangeRate          decimal.Decimal `json:"exchange_rate"`
	WorkshopAmount        decimal.Decimal `json:"workshop_amount"`
	MaxRedeemablePoints   decimal.Decimal `json:"max_redeemable_points"`
	RecommendedRedemption decimal.Decimal `json:"recommended_redemption"`
	CanRedeem             bool            `json:"can_redeem"`
	Message               string          `json:"message,omitempty"`
}

type redeemRequest struct {
	WorkshopID  int64           `json:"workshop_id"`
	Points      decimal.Decimal `json:"points"`
	OrderAmount decimal.Decimal `json:"order_amount"`
}

type redeemResponse struct {
	TransactionID  int64           `json:"transaction_id"`
	PointsRedeemed decimal.Decimal `json:"points_redeemed"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

type errorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (l *HTTPLedger) FetchQuote(ctx context.Context, workshopID int64, workshopAmount decimal.Decimal) (redemption.Quote, error) {
	var resp calculateRedemptionResponse
	err := l.post(ctx, "/rewards/calculate-redemption", calculateRedemptionRequest{
		WorkshopID:     workshopID,
		WorkshopAmount: workshopAmount,
	}, &resp)
	if err != nil {
		return redemption.Quote{}, err
	}

	return redemption.Quote{
		ExchangeRate:          resp.ExchangeRate,
		WorkshopAmount:        resp.WorkshopAmount,
		MaxRedeemablePoints:   resp.MaxRedeemablePoints,
		RecommendedRedemption: resp.RecommendedRedemption,
		CanRedeem:             resp.CanRedeem,
		Message:               resp.Message,
	}, nil
}

func (l *HTTPLedger) Redeem(ctx context.Context, workshopID int64, points, orderAmount decimal.Decimal) (*Confirmation, error) {
	var resp redeemResponse
	err := l.post(ctx, "/rewards/redeem", redeemRequest{
		WorkshopID:  workshopID,
		Points:      points,
		OrderAmount: orderAmount,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &Confirmation{
		TransactionID:  resp.TransactionID,
		PointsRedeemed: resp.PointsRedeemed,
		DiscountAmount: resp.DiscountAmount,
		FinalAmount:    resp.FinalAmount,
	}, nil
}

func (l *HTTPLedger) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		l.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", l.userID)

	res, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var errRes errorResponse
		_ = json.NewDecoder(res.Body).Decode(&errRes)

		// 409 คือ server ปฏิเสธตาม policy เช่น point เกินเพดาน ณ ตอนนั้น
		if res.StatusCode == http.StatusConflict {
			if errRes.Message != "" {
				return fmt.Errorf("%w: %s", ErrPolicyViolation, errRes.Message)
			}
			return ErrPolicyViolation
		}
		if errRes.Message != "" {
			return fmt.Errorf("rewards api: %s (%s)", errRes.Message, res.Status)
		}
		return fmt.Errorf("rewards api: unexpected status %s", res.Status)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
