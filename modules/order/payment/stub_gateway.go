package payment

import (
	"context"
	"fmt"

	"nachna/shared/common/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// stubGateway ใช้แทน gateway จริงระหว่างพัฒนา
// เปิด intent ปลอมและตอบว่าจ่ายแล้วเสมอตอนถามสถานะ
type stubGateway struct {
	baseURL string
}

func NewStubGateway(baseURL string) Gateway {
	return &stubGateway{baseURL: baseURL}
}

func (g *stubGateway) CreatePayment(ctx context.Context, orderID int64, amount decimal.Decimal) (*Intent, error) {
	ref := uuid.New().String()

	logger.FromContext(ctx).Info("creating payment intent",
		zap.Int64("order_id", orderID),
		zap.String("amount", amount.String()),
		zap.String("reference_id", ref))

	return &Intent{
		ReferenceID: ref,
		QRCodeURL:   fmt.Sprintf("%s/qr/%s", g.baseURL, ref),
	}, nil
}

func (g *stubGateway) GetStatus(ctx context.Context, referenceID string) (Status, error) {
	logger.FromContext(ctx).Info("checking payment status",
		zap.String("reference_id", referenceID))
	return StatusPaid, nil
}
