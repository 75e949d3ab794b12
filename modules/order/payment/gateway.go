// Package payment คือ port ไปยัง payment gateway ภายนอก
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Intent คือรายการจ่ายเงินที่ gateway เปิดไว้ รอ user scan QR
type Intent struct {
	ReferenceID string
	QRCodeURL   string
}

type Gateway interface {
	CreatePayment(ctx context.Context, orderID int64, amount decimal.Decimal) (*Intent, error)
	GetStatus(ctx context.Context, referenceID string) (Status, error)
}
