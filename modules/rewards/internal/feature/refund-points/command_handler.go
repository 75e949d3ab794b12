package refundpoints

import (
	"context"

	"nachna/modules/rewards/domainerrors"
	"nachna/modules/rewards/internal/model"
	"nachna/modules/rewards/internal/repository"
	"nachna/shared/common/logger"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"go.opentelemetry.io/otel/trace"
)

// refundPointsCommandHandler คืน point เมื่อ order ถูกยกเลิก
// เรียกผ่าน mediator จากโมดูล order เท่านั้น ไม่มี endpoint ของตัวเอง
type refundPointsCommandHandler struct {
	transactor transactor.Transactor
	rewardRepo repository.RewardRepository
}

func NewRefundPointsCommandHandler(
	transactor transactor.Transactor,
	rewardRepo repository.RewardRepository) *refundPointsCommandHandler {
	return &refundPointsCommandHandler{
		transactor: transactor,
		rewardRepo: rewardRepo,
	}
}

func (h *refundPointsCommandHandler) Handle(ctx context.Context, cmd *rewardscontract.RefundPointsCommand) (*mediator.NoResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:RefundPointsCommand")
	defer span.End()

	if !cmd.Points.IsPositive() {
		// order ที่ไม่ได้แลก point ไม่มีอะไรต้องคืน
		return &mediator.NoResponse{}, nil
	}

	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {

		balance, err := h.rewardRepo.FindBalanceByUserIDForUpdate(ctx, cmd.UserID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if balance == nil {
			return domainerrors.ErrNoRewardAccount
		}

		if err := balance.Refund(cmd.Points); err != nil {
			return err
		}

		tx := model.NewRefundTransaction(cmd.UserID, cmd.Points, cmd.OrderID)

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
