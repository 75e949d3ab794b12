package event

import (
	"time"

	"nachna/shared/common/domain"

	"github.com/shopspring/decimal"
)

const (
	OrderCreatedDomainEventType domain.EventName = "OrderCreated"
)

type OrderCreatedDomainEvent struct {
	domain.BaseDomainEvent
	OrderID     int64
	UserID      string
	WorkshopID  int64
	FinalAmount decimal.Decimal
}

func NewOrderCreatedDomainEvent(orderID int64, userID string, workshopID int64, finalAmount decimal.Decimal) *OrderCreatedDomainEvent {
	return &OrderCreatedDomainEvent{
		BaseDomainEvent: domain.BaseDomainEvent{
			Name: OrderCreatedDomainEventType,
			At:   time.Now(),
		},
		OrderID:     orderID,
		UserID:      userID,
		WorkshopID:  workshopID,
		FinalAmount: finalAmount,
	}
}
