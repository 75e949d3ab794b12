package accruepoints

import (
	"context"

	"nachna/modules/rewards/internal/model"
	"nachna/modules/rewards/internal/repository"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/logger"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"go.opentelemetry.io/otel/trace"
)

// accruePointsCommandHandler สะสม point ให้ user ตาม earn rate
// ของยอดที่จ่ายจริง เรียกจากโมดูล order หลังจ่ายเงินสำเร็จ
type accruePointsCommandHandler struct {
	transactor transactor.Transactor
	policy     redemption.Policy
	rewardRepo repository.RewardRepository
}

func NewAccruePointsCommandHandler(
	transactor transactor.Transactor,
	policy redemption.Policy,
	rewardRepo repository.RewardRepository) *accruePointsCommandHandler {
	return &accruePointsCommandHandler{
		transactor: transactor,
		policy:     policy,
		rewardRepo: rewardRepo,
	}
}

func (h *accruePointsCommandHandler) Handle(ctx context.Context, cmd *rewardscontract.AccruePointsCommand) (*mediator.NoResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:AccruePointsCommand")
	defer span.End()

	// point ที่ได้เป็นจำนวนเต็ม ปัดลงเสมอ
	points := cmd.OrderAmount.Mul(h.policy.EarnRate).RoundDown(0)
	if !points.IsPositive() {
		return &mediator.NoResponse{}, nil
	}

	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {

		balance, err := h.rewardRepo.FindBalanceByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		// user ที่เพิ่งแลกครั้งแรกยังไม่มีแถว balance สร้างให้เลย
		if balance == nil {
			balance = model.NewRewardBalance(cmd.UserID)
			if err := h.rewardRepo.CreateBalance(ctx, balance); err != nil {
				logger.FromContext(ctx).Error(err.Error())
				return err
			}
		}

		if err := balance.Accrue(points); err != nil {
			return err
		}

		tx := model.NewEarnTransaction(cmd.UserID, points, cmd.OrderID)

		if err := h.rewardRepo.CreateTransaction(ctx, tx); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		return h.rewardRepo.UpdateBalance(ctx, balance)
	})

	if err != nil {
		return nil, err
	}

	return &mediator.NoResponse{}, nil
}
