package order

import (
	"context"
	"fmt"

	"nachna/modules/notification/service"
	"nachna/shared/common/eventbus"
	"nachna/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

type orderCreatedHandler struct {
	notiService service.NotificationService
}

func NewOrderCreatedHandler(notiService service.NotificationService) *orderCreatedHandler {
	return &orderCreatedHandler{
		notiService: notiService,
	}
}

func (h *orderCreatedHandler) Handle(ctx context.Context, evt eventbus.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("integration_event")
	ctx, span := tracer.Start(ctx, "IntegrationEvent:OrderCreatedPush")
	defer span.End()

	e, ok := evt.(*messaging.OrderCreatedIntegrationEvent) // ใช้ pointer
	if !ok {
		return fmt.Errorf("invalid event type")
	}

	return h.notiService.SendPushNotification(ctx, e.UserID, "Booking confirmed!", map[string]any{
		"order_id":     e.OrderID,
		"workshop_id":  e.WorkshopID,
		"final_amount": e.FinalAmount,
	})
}
