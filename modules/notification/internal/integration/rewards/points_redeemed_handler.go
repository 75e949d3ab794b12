package rewards

import (
	"context"
	"fmt"

	"nachna/modules/notification/service"
	"nachna/shared/common/eventbus"
	"nachna/shared/messaging"

	"go.opentelemetry.io/otel/trace"
)

type pointsRedeemedHandler struct {
	notiService service.NotificationService
}

func NewPointsRedeemedHandler(notiService service.NotificationService) *pointsRedeemedHandler {
	return &pointsRedeemedHandler{
		notiService: notiService,
	}
}

func (h *pointsRedeemedHandler) Handle(ctx context.Context, evt eventbus.Event) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("integration_event")
	ctx, span := tracer.Start(ctx, "IntegrationEvent:PointsRedeemedPush")
	defer span.End()

	e, ok := evt.(*messaging.PointsRedeemedIntegrationEvent)
	if !ok {
		return fmt.Errorf("invalid event type")
	}

	return h.notiService.SendPushNotification(ctx, e.UserID, "Points redeemed", map[string]any{
		"points_redeemed": e.PointsRedeemed,
		"discount_amount": e.DiscountAmount,
		"transaction_id":  e.TransactionID,
	})
}
