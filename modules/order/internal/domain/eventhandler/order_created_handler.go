package eventhandler

import (
	"context"

	"nachna/modules/order/internal/domain/event"
	"nachna/shared/common/domain"
	"nachna/shared/common/eventbus"
	"nachna/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

type orderCreatedDomainEventHandler struct {
	eventBus eventbus.EventBus
}

func NewOrderCreatedDomainEventHandler(eventBus eventbus.EventBus) domain.DomainEventHandler {
	return &orderCreatedDomainEventHandler{
		eventBus: eventBus,
	}
}

func (h *orderCreatedDomainEventHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("domain_event")
	ctx, span := tracer.Start(ctx, "DomainEvent:OrderCreated")
	defer span.End()

	e, ok := evt.(*event.OrderCreatedDomainEvent)
	if !ok {
		return domain.ErrInvalidEvent
	}

	integrationEvent := messaging.NewOrderCreatedIntegrationEvent(
		e.OrderID,
		e.UserID,
		e.WorkshopID,
		e.FinalAmount,
	)

	return h.eventBus.Publish(ctx, integrationEvent)
}
