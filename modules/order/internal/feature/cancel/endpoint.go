package cancel

import (
	"strconv"

	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Delete(path, cancelOrderHTTPHandler)
}

// CancelOrder godoc
// @Summary		Cancel Order
// @Description	Cancel a pending order and refund any redeemed points
// @Tags			Order
// @Param			X-User-ID	header	string	true	"User ID"
// @Param			orderID		path	int		true	"Order ID"
// @Failure		401
// @Failure		404
// @Success		204
// @Router			/orders/{orderID} [delete]
func cancelOrderHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CancelOrder")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		return errs.AuthenticationError("missing X-User-ID header")
	}

	orderID, err := strconv.ParseInt(c.Params("orderID"), 10, 64)
	if err != nil {
		return errs.InputValidationError("invalid order id")
	}

	if _, err := mediator.Send[*CancelOrderCommand, *mediator.NoResponse](
		ctx,
		&CancelOrderCommand{UserID: userID, OrderID: orderID},
	); err != nil {
		return err
	}

	// ตอบกลับด้วย status code 204 (no content)
	return c.SendStatus(fiber.StatusNoContent)
}
