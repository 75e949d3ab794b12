package messaging

import (
	"time"

	"nachna/shared/common/eventbus"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Integration event ที่ส่งข้ามโมดูลผ่าน eventbus
const (
	OrderCreatedIntegrationEventName   eventbus.EventName = "OrderCreated"
	PointsRedeemedIntegrationEventName eventbus.EventName = "PointsRedeemed"
)

type OrderCreatedIntegrationEvent struct {
	eventbus.BaseEvent
	OrderID     int64           `json:"order_id"`
	UserID      string          `json:"user_id"`
	WorkshopID  int64           `json:"workshop_id"`
	FinalAmount decimal.Decimal `json:"final_amount"`
}

func NewOrderCreatedIntegrationEvent(orderID int64, userID string, workshopID int64, finalAmount decimal.Decimal) *OrderCreatedIntegrationEvent {
	return &OrderCreatedIntegrationEvent{
		BaseEvent: eventbus.BaseEvent{
			ID:   uuid.New().String(),
			Name: OrderCreatedIntegrationEventName,
			At:   time.Now(),
		},
		OrderID:     orderID,
		UserID:      userID,
		WorkshopID:  workshopID,
		FinalAmount: finalAmount,
	}
}

type PointsRedeemedIntegrationEvent struct {
	eventbus.BaseEvent
	UserID         string          `json:"user_id"`
	TransactionID  int64           `json:"transaction_id"`
	PointsRedeemed decimal.Decimal `json:"points_redeemed"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

func NewPointsRedeemedIntegrationEvent(userID string, transactionID int64, points, discount decimal.Decimal) *PointsRedeemedIntegrationEvent {
	return &PointsRedeemedIntegrationEvent{
		BaseEvent: eventbus.BaseEvent{
			ID:   uuid.New().String(),
			Name: PointsRedeemedIntegrationEventName,
			At:   time.Now(),
		},
		UserID:         userID,
		TransactionID:  transactionID,
		PointsRedeemed: points,
		DiscountAmount: discount,
	}
}
