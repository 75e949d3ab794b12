package getbalance

import (
	"nachna/shared/common/errs"
	"nachna/shared/common/mediator"
	"nachna/shared/contract/rewardscontract"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getBalanceHTTPHandler)
}

// GetBalance godoc
// @Summary		Get Reward Balance
// @Description	Get the reward point balance for the current user
// @Tags			Rewards
// @Produce		json
// @Param			X-User-ID	header	string	true	"User ID"
// @Failure		401
// @Success		200	{object}	GetBalanceResponse
// @Router			/rewards/balance [get]
func getBalanceHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:GetBalance")
	defer span.End()

	userID := c.Get("X-User-ID")
	if userID == "" {
		// จัดการ error response ที่ middleware
		return errs.AuthenticationError("missing X-User-ID header")
	}

	resp, err := mediator.Send[*rewardscontract.GetBalanceQuery, *rewardscontract.GetBalanceQueryResult](
		ctx,
		&rewardscontract.GetBalanceQuery{UserID: userID},
	)
	if err != nil {
		return err
	}

	// ตอบกลับด้วย status code 200 (OK) และข้อมูลแบบ JSON
	return c.Status(fiber.StatusOK).JSON(GetBalanceResponse{
		AvailableBalance: resp.AvailableBalance,
		LifetimeEarned:   resp.LifetimeEarned,
		LifetimeRedeemed: resp.LifetimeRedeemed,
	})
}
