package model

import (
	"time"

	"nachna/shared/common/idgen"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeEarn   TransactionType = "earn"
	TransactionTypeRedeem TransactionType = "redeem"
	TransactionTypeRefund TransactionType = "refund"
)

// RewardTransaction คือ ledger entry หนึ่งรายการ append-only ไม่มีการแก้ย้อนหลัง
type RewardTransaction struct {
	ID              int64           `db:"id"`
	UserID          string          `db:"user_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Points          decimal.Decimal `db:"points"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	ReferenceID     int64           `db:"reference_id"` // workshop หรือ order ที่เกี่ยวข้อง
	CreatedAt       time.Time       `db:"created_at"`
}

func NewRedeemTransaction(userID string, points, discount decimal.Decimal, workshopID int64) *RewardTransaction {
	return &RewardTransaction{
		ID:              idgen.GenerateTimeRandomID(),
		UserID:          userID,
		TransactionType: TransactionTypeRedeem,
		Points:          points,
		DiscountAmount:  discount,
		ReferenceID:     workshopID,
	}
}

func NewEarnTransaction(userID string, points decimal.Decimal, orderID int64) *RewardTransaction {
	return &RewardTransaction{
		ID:              idgen.GenerateTimeRandomID(),
		UserID:          userID,
		TransactionType: TransactionTypeEarn,
		Points:          points,
		DiscountAmount:  decimal.Zero,
		ReferenceID:     orderID,
	}
}

func NewRefundTransaction(userID string, points decimal.Decimal, orderID int64) *RewardTransaction {
	return &RewardTransaction{
		ID:              idgen.GenerateTimeRandomID(),
		UserID:          userID,
		TransactionType: TransactionTypeRefund,
		Points:          points,
		DiscountAmount:  decimal.Zero,
		ReferenceID:     orderID,
	}
}
