package rewardscontract

import (
	"github.com/shopspring/decimal"
)

// GetBalanceQuery ใช้อ่านยอด point คงเหลือของ user ข้ามโมดูล
type GetBalanceQuery struct {
	UserID string
}

type GetBalanceQueryResult struct {
	AvailableBalance decimal.Decimal
	LifetimeEarned   decimal.Decimal
	LifetimeRedeemed decimal.Decimal
}

// RedeemPointsCommand ตัดยอด point เพื่อแลกเป็นส่วนลดของ order
// ต้องเรียกภายใน transaction ของฝั่ง caller เพื่อให้ตัดยอดกับสร้าง order เป็น atomic เดียวกัน
type RedeemPointsCommand struct {
	UserID      string
	WorkshopID  int64
	Points      decimal.Decimal
	OrderAmount decimal.Decimal
}

type RedeemPointsCommandResult struct {
	TransactionID  int64
	PointsRedeemed decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

// RefundPointsCommand คืนยอด point เมื่อ order ถูกยกเลิก
type RefundPointsCommand struct {
	UserID        string
	OrderID       int64
	Points        decimal.Decimal
	TransactionID int64
}

// AccruePointsCommand สะสม point ให้ user ตาม earn rate ของ order ที่จ่ายแล้ว
type AccruePointsCommand struct {
	UserID      string
	OrderID     int64
	OrderAmount decimal.Decimal
}
