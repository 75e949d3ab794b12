package calculateredemption

import (
	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, calculateRedemptionHTTPHandler)
}

// CalculateRedemption godoc
// @Summary		Calculate Redemption Quote
// @Description	Compute the redeemable point ceiling for a workshop price
// @Tags			Rewards
// @Produce		json
// @Param			X-User-ID	header	string						true	"User ID"
// @Param			quote		body	CalculateRedemptionRequest	true	"Quote Data"
// @Failure		401
// @Success		200	{object}	CalculateRedemptionResponse
// @Router			/rewards/calculate-redemption [post]
func calculateRedemptionHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CalculateRedemption")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		return errs.AuthenticationError("missing X-User-ID header")
	}

	var req CalculateRedemptionRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := mediator.Send[*CalculateRedemptionQuery, *CalculateRedemptionResponse](
		ctx,
		&CalculateRedemptionQuery{UserID: userID, CalculateRedemptionRequest: req},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
