package model

import (
	"database/sql"
	"time"

	"nachna/modules/order/internal/domain/event"
	"nachna/shared/common/domain"
	"nachna/shared/common/errs"
	"nachna/shared/common/idgen"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Order คือการจอง workshop หนึ่งรายการ
type Order struct {
	ID             int64           `db:"id"`
	UserID         string          `db:"user_id"`
	WorkshopID     int64           `db:"workshop_id"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	FinalAmount    decimal.Decimal `db:"final_amount"`
	PointsRedeemed decimal.Decimal `db:"points_redeemed"`
	// RewardTransactionID อ้างถึง ledger entry ฝั่ง rewards ใช้ตอนคืน point
	RewardTransactionID sql.NullInt64  `db:"reward_transaction_id"`
	Status              OrderStatus    `db:"status"`
	PaymentRef          sql.NullString `db:"payment_ref"`
	QRCodeURL           sql.NullString `db:"qr_code_url"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
	domain.Aggregate
}

func NewOrder(userID string, workshopID int64, originalAmount, discountAmount, finalAmount, pointsRedeemed decimal.Decimal) *Order {
	order := &Order{
		ID:             idgen.GenerateTimeRandomID(),
		UserID:         userID,
		WorkshopID:     workshopID,
		OriginalAmount: originalAmount,
		DiscountAmount: discountAmount,
		FinalAmount:    finalAmount,
		PointsRedeemed: pointsRedeemed,
		Status:         OrderStatusPendingPayment,
	}

	order.AddDomainEvent(event.NewOrderCreatedDomainEvent(
		order.ID, order.UserID, order.WorkshopID, order.FinalAmount))

	return order
}

func (o *Order) AttachRedemption(transactionID int64) {
	o.RewardTransactionID = sql.NullInt64{Int64: transactionID, Valid: true}
}

func (o *Order) AttachPayment(referenceID, qrCodeURL string) {
	o.PaymentRef = sql.NullString{String: referenceID, Valid: true}
	o.QRCodeURL = sql.NullString{String: qrCodeURL, Valid: true}
}

// MarkPaid เปลี่ยนสถานะเป็นจ่ายแล้ว เรียกซ้ำบน order ที่จ่ายแล้วไม่เป็นไร
func (o *Order) MarkPaid() error {
	if o.Status == OrderStatusPaid {
		return nil
	}
	if o.Status == OrderStatusCancelled {
		return errs.BusinessRuleError("cannot mark a cancelled order as paid")
	}
	o.Status = OrderStatusPaid
	return nil
}

// Cancel ยกเลิกได้เฉพาะ order ที่ยังไม่จ่าย
func (o *Order) Cancel() error {
	switch o.Status {
	case OrderStatusCancelled:
		return errs.ConflictError("order is already cancelled")
	case OrderStatusPaid:
		return errs.BusinessRuleError("cannot cancel a paid order")
	}
	o.Status = OrderStatusCancelled
	return nil
}
