package paymentstatus

import (
	"strconv"

	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getPaymentStatusHTTPHandler)
}

// GetPaymentStatus godoc
// @Summary		Get Payment Status
// @Description	Poll the payment status of an order and reconcile with the gateway
// @Tags			Order
// @Produce		json
// @Param			X-User-ID	header	string	true	"User ID"
// @Param			orderID		path	int		true	"Order ID"
// @Failure		401
// @Failure		404
// @Success		200	{object}	PaymentStatusResponse
// @Router			/orders/{orderID}/payment-status [get]
func getPaymentStatusHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:GetPaymentStatus")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		return errs.AuthenticationError("missing X-User-ID header")
	}

	orderID, err := strconv.ParseInt(c.Params("orderID"), 10, 64)
	if err != nil {
		return errs.InputValidationError("invalid order id")
	}

	resp, err := mediator.Send[*GetPaymentStatusQuery, *PaymentStatusResponse](
		ctx,
		&GetPaymentStatusQuery{UserID: userID, OrderID: orderID},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
