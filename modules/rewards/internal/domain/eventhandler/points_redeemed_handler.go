package eventhandler

import (
	"context"

	"nachna/modules/rewards/internal/domain/event"
	"nachna/shared/common/domain"
	"nachna/shared/common/eventbus"
	"nachna/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

// pointsRedeemedDomainEventHandler แปลง domain event เป็น integration event
// เพื่อให้โมดูลอื่น (เช่น notification) รับรู้ผ่าน eventbus
type pointsRedeemedDomainEventHandler struct {
	eventBus eventbus.EventBus
}

func NewPointsRedeemedDomainEventHandler(eventBus eventbus.EventBus) domain.DomainEventHandler {
	return &pointsRedeemedDomainEventHandler{
		eventBus: eventBus,
	}
}

func (h *pointsRedeemedDomainEventHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:PointsRedeemed")
	defer span.End()

	e, ok := evt.(*event.PointsRedeemedDomainEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	integrationEvent := messaging.NewPointsRedeemedIntegrationEvent(
		e.UserID,
		e.TransactionID,
		e.Points,
		e.DiscountAmount,
	)

	return h.eventBus.Publish(ctx, integrationEvent)
}
