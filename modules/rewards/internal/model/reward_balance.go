package model

import (
	"time"

	"nachna/modules/rewards/internal/domain/event"
	"nachna/shared/common/domain"
	"nachna/shared/common/errs"
	"nachna/shared/common/idgen"

	"github.com/shopspring/decimal"
)

// RewardBalance คือยอด point ของ user หนึ่งคน เป็น aggregate root ของโมดูลนี้
// ทุกการเปลี่ยนยอดต้องผ่าน method ของ aggregate เท่านั้น
type RewardBalance struct {
	ID               int64           `db:"id"` // tag db ใช้สำหรับ StructScan() ของ sqlx
	UserID           string          `db:"user_id"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	LifetimeEarned   decimal.Decimal `db:"lifetime_earned"`
	LifetimeRedeemed decimal.Decimal `db:"lifetime_redeemed"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
	domain.Aggregate
}

func NewRewardBalance(userID string) *RewardBalance {
	return &RewardBalance{
		ID:               idgen.GenerateTimeRandomID(),
		UserID:           userID,
		AvailableBalance: decimal.Zero,
		LifetimeEarned:   decimal.Zero,
		LifetimeRedeemed: decimal.Zero,
	}
}

// Redeem ตัดยอด point สำหรับแลกเป็นส่วนลด
// ยอดคงเหลือห้ามติดลบเด็ดขาด ตรวจก่อนตัดเสมอ
func (b *RewardBalance) Redeem(points, discount decimal.Decimal, transactionID int64) error {
	if !points.IsPositive() {
		return errs.BusinessRuleError("points to redeem must be greater than 0")
	}

	newBalance := b.AvailableBalance.Sub(points)
	if newBalance.IsNegative() {
		return errs.BusinessRuleError("insufficient reward points")
	}

	b.AvailableBalance = newBalance
	b.LifetimeRedeemed = b.LifetimeRedeemed.Add(points)

	b.AddDomainEvent(event.NewPointsRedeemedDomainEvent(
		b.UserID, points, discount, transactionID))

	return nil
}

// Accrue เพิ่มยอด point จากการจ่ายเงินสำเร็จ
func (b *RewardBalance) Accrue(points decimal.Decimal) error {
	if points.IsNegative() {
		return errs.BusinessRuleError("points to accrue must not be negative")
	}

	b.AvailableBalance = b.AvailableBalance.Add(points)
	b.LifetimeEarned = b.LifetimeEarned.Add(points)
	return nil
}

// Refund คืนยอด point ที่เคยตัดไป เมื่อ order ถูกยกเลิก
// lifetime_redeemed ถูกหักกลับด้วย เพื่อให้สถิติตรงกับที่แลกจริง
func (b *RewardBalance) Refund(points decimal.Decimal) error {
	if !points.IsPositive() {
		return errs.BusinessRuleError("points to refund must be greater than 0")
	}

	b.AvailableBalance = b.AvailableBalance.Add(points)

	b.LifetimeRedeemed = b.LifetimeRedeemed.Sub(points)
	if b.LifetimeRedeemed.IsNegative() {
		b.LifetimeRedeemed = decimal.Zero
	}
	return nil
}
