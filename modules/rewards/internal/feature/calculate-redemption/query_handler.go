package calculateredemption

import (
	"context"

	"nachna/modules/rewards/internal/repository"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/logger"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

type calculateRedemptionQueryHandler struct {
	policy     redemption.Policy
	rewardRepo repository.RewardRepository
}

func NewCalculateRedemptionQueryHandler(
	policy redemption.Policy,
	rewardRepo repository.RewardRepository) *calculateRedemptionQueryHandler {
	return &calculateRedemptionQueryHandler{
		policy:     policy,
		rewardRepo: rewardRepo,
	}
}

func (h *calculateRedemptionQueryHandler) Handle(ctx context.Context, query *CalculateRedemptionQuery) (*CalculateRedemptionResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:CalculateRedemptionQuery")
	defer span.End()

	balance, err := h.rewardRepo.FindBalanceByUserID(ctx, query.UserID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	available := decimal.Zero
	if balance != nil {
		available = balance.AvailableBalance
	}

	quote := h.policy.ComputeQuote(available, query.WorkshopAmount)

	return &CalculateRedemptionResponse{
		ExchangeRate:          quote.ExchangeRate,
		WorkshopAmount:        quote.WorkshopAmount,
		MaxRedeemablePoints:   quote.MaxRedeemablePoints,
		RecommendedRedemption: quote.RecommendedRedemption,
		CanRedeem:             quote.CanRedeem,
		Message:               quote.Message,
	}, nil
}
