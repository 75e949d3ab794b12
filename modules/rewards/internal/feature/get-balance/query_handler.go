package getbalance

import (
	"context"

	"nachna/modules/rewards/internal/repository"
	"nachna/shared/common/logger"
	"nachna/shared/contract/rewardscontract"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

type getBalanceQueryHandler struct {
	rewardRepo repository.RewardRepository
}

func NewGetBalanceQueryHandler(rewardRepo repository.RewardRepository) *getBalanceQueryHandler {
	return &getBalanceQueryHandler{
		rewardRepo: rewardRepo,
	}
}

func (h *getBalanceQueryHandler) Handle(ctx context.Context, query *rewardscontract.GetBalanceQuery) (*rewardscontract.GetBalanceQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:GetBalanceQuery")
	defer span.End()

	balance, err := h.rewardRepo.FindBalanceByUserID(ctx, query.UserID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	// user ที่ยังไม่เคยมี transaction ถือว่ายอดเป็น 0 ไม่ใช่ error
	if balance == nil {
		return &rewardscontract.GetBalanceQueryResult{
			AvailableBalance: decimal.Zero,
			LifetimeEarned:   decimal.Zero,
			LifetimeRedeemed: decimal.Zero,
		}, nil
	}

	return &rewardscontract.GetBalanceQueryResult{
		AvailableBalance: balance.AvailableBalance,
		LifetimeEarned:   balance.LifetimeEarned,
		LifetimeRedeemed: balance.LifetimeRedeemed,
	}, nil
}
