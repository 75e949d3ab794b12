package checkout

import (
	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, checkoutHTTPHandler)
}

// Checkout godoc
// @Summary		Checkout Workshop Order
// @Description	Create an order for a workshop, optionally redeeming reward points
// @Tags			Order
// @Produce		json
// @Param			X-User-ID	header	string			true	"User ID"
// @Param			order		body	CheckoutRequest	true	"Checkout Data"
// @Failure		401
// @Failure		404
// @Failure		409
// @Success		201	{object}	CheckoutResponse
// @Router			/orders [post]
func checkoutHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:Checkout")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		return errs.AuthenticationError("missing X-User-ID header")
	}

	var req CheckoutRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := mediator.Send[*CheckoutCommand, *CheckoutResponse](
		ctx,
		&CheckoutCommand{UserID: userID, CheckoutRequest: req},
	)
	if err != nil {
		return err
	}

	// ตอบกลับด้วย status code 201 (created) และข้อมูลแบบ JSON
	return c.Status(fiber.StatusCreated).JSON(resp)
}
