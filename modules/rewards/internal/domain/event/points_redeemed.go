package event

import (
	"time"

	"nachna/shared/common/domain"

	"github.com/shopspring/decimal"
)

const (
	PointsRedeemedDomainEventType domain.EventName = "PointsRedeemed"
)

// PointsRedeemedDomainEvent เกิดขึ้นเมื่อ RewardBalance ถูกตัดยอดสำเร็จ
type PointsRedeemedDomainEvent struct {
	domain.BaseDomainEvent
	UserID         string
	Points         decimal.Decimal
	DiscountAmount decimal.Decimal
	TransactionID  int64
}

func NewPointsRedeemedDomainEvent(userID string, points, discount decimal.Decimal, transactionID int64) *PointsRedeemedDomainEvent {
	return &PointsRedeemedDomainEvent{
		BaseDomainEvent: domain.BaseDomainEvent{
			Name: PointsRedeemedDomainEventType,
			At:   time.Now(),
		},
		UserID:         userID,
		Points:         points,
		DiscountAmount: discount,
		TransactionID:  transactionID,
	}
}
