package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	return NewOrder("user-1", 7,
		decimal.NewFromInt(1000), decimal.NewFromInt(300),
		decimal.NewFromInt(700), decimal.NewFromInt(300))
}

func TestNewOrderRaisesCreatedEvent(t *testing.T) {
	order := newTestOrder()

	assert.Equal(t, OrderStatusPendingPayment, order.Status)

	events := order.PullDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "OrderCreated", string(events[0].EventName()))
}

func TestMarkPaid(t *testing.T) {
	order := newTestOrder()

	require.NoError(t, order.MarkPaid())
	assert.Equal(t, OrderStatusPaid, order.Status)

	// idempotent เรียกซ้ำได้
	require.NoError(t, order.MarkPaid())

	// จ่ายแล้วยกเลิกไม่ได้
	assert.Error(t, order.Cancel())
}

func TestCancel(t *testing.T) {
	order := newTestOrder()

	require.NoError(t, order.Cancel())
	assert.Equal(t, OrderStatusCancelled, order.Status)

	// ยกเลิกซ้ำหรือจ่ายหลังยกเลิกไม่ได้
	assert.Error(t, order.Cancel())
	assert.Error(t, order.MarkPaid())
}
