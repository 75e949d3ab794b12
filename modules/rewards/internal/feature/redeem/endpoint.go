package redeem

import (
	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"
	"nachna/shared/contract/rewardscontract"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, redeemHTTPHandler)
}

// Redeem godoc
// @Summary		Redeem Points
// @Description	Debit reward points and return the confirmed discount
// @Tags			Rewards
// @Produce		json
// @Param			X-User-ID	header	string			true	"User ID"
// @Param			redeem		body	RedeemRequest	true	"Redeem Data"
// @Failure		401
// @Failure		409
// @Failure		422
// @Success		200	{object}	RedeemResponse
// @Router			/rewards/redeem [post]
func redeemHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:Redeem")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		return errs.AuthenticationError("missing X-User-ID header")
	}

	var req RedeemRequest
	if err := c.Bind().Body(&req); err != nil {
		// จัดการ error response ที่ middleware
		return errs.InputValidationError(err.Error())
	}

	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := mediator.Send[*rewardscontract.RedeemPointsCommand, *rewardscontract.RedeemPointsCommandResult](
		ctx,
		&rewardscontract.RedeemPointsCommand{
			UserID:      userID,
			WorkshopID:  req.WorkshopID,
			Points:      req.Points,
			OrderAmount: req.OrderAmount,
		},
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(RedeemResponse{
		TransactionID:  resp.TransactionID,
		PointsRedeemed: resp.PointsRedeemed,
		DiscountAmount: resp.DiscountAmount,
		FinalAmount:    resp.FinalAmount,
	})
}
