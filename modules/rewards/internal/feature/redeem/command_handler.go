package redeem

import (
	"context"

	"nachna/modules/rewards/domainerrors"
	"nachna/modules/rewards/internal/model"
	"nachna/modules/rewards/internal/repository"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/domain"
	"nachna/shared/common/logger"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"go.opentelemetry.io/otel/trace"
)

type redeemPointsCommandHandler struct {
	transactor transactor.Transactor
	policy     redemption.Policy
	rewardRepo repository.RewardRepository
	dispatcher domain.DomainEventDispatcher
}

func NewRedeemPointsCommandHandler(
	transactor transactor.Transactor,
	policy redemption.Policy,
	rewardRepo repository.RewardRepository,
	dispatcher domain.DomainEventDispatcher) *redeemPointsCommandHandler {
	return &redeemPointsCommandHandler{
		transactor: transactor,
		policy:     policy,
		rewardRepo: rewardRepo,
		dispatcher: dispatcher,
	}
}

// Handle ตัดยอด point ภายใต้ row lock
// คำนวณเพดานใหม่จากยอดจริง ณ ตอนตัด ไม่เชื่อ quote เก่าจากฝั่ง client
func (h *redeemPointsCommandHandler) Handle(ctx context.Context, cmd *rewardscontract.RedeemPointsCommand) (*rewardscontract.RedeemPointsCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:RedeemPointsCommand")
	defer span.End()

	if !cmd.Points.IsPositive() {
		return nil, domainerrors.ErrNothingToRedeem
	}

	var result *rewardscontract.RedeemPointsCommandResult
	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {

		// ล็อคแถว balance ไว้จนจบ transaction
		balance, err := h.rewardRepo.FindBalanceByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if balance == nil {
			return domainerrors.ErrNoRewardAccount
		}

		// ตรวจเพดานจากยอดปัจจุบัน quote ฝั่ง client อาจ stale ไปแล้ว
		quote := h.policy.ComputeQuote(balance.AvailableBalance, cmd.OrderAmount)
		if !quote.CanRedeem || cmd.Points.GreaterThan(quote.MaxRedeemablePoints) {
			return domainerrors.ErrRedemptionExceedsMax
		}

		calc, err := redemption.CalculateFinalAmount(cmd.OrderAmount, cmd.Points, h.policy.ExchangeRate)
		if err != nil {
			return err
		}

		tx := model.NewRedeemTransaction(cmd.UserID, cmd.Points, calc.Discount, cmd.WorkshopID)

		if err := balance.Redeem(cmd.Points, calc.Discount, tx.ID); err != nil {
			return err
		}

		// บันทึกลงฐานข้อมูล
		if err := h.rewardRepo.CreateTransaction(ctx, tx); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if err := h.rewardRepo.UpdateBalance(ctx, balance); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		// ดึง domain events จาก aggregate แล้ว dispatch หลัง commit แล้ว
		events := balance.PullDomainEvents()
		registerPostCommitHook(func(ctx context.Context) error {
			return h.dispatcher.Dispatch(ctx, events)
		})

		result = &rewardscontract.RedeemPointsCommandResult{
			TransactionID:  tx.ID,
			PointsRedeemed: cmd.Points,
			DiscountAmount: calc.Discount,
			FinalAmount:    calc.FinalAmount,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}
