package cancel

import (
	"context"

	"nachna/modules/order/domainerrors"
	"nachna/modules/order/internal/repository"
	"nachna/shared/common/logger"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"go.opentelemetry.io/otel/trace"
)

type cancelOrderCommandHandler struct {
	transactor transactor.Transactor
	orderRepo  repository.OrderRepository
}

func NewCancelOrderCommandHandler(
	transactor transactor.Transactor,
	orderRepo repository.OrderRepository) *cancelOrderCommandHandler {
	return &cancelOrderCommandHandler{
		transactor: transactor,
		orderRepo:  orderRepo,
	}
}

// Handle ยกเลิก order ที่ยังไม่จ่าย และคืน point ที่เคยตัดไว้ใน transaction เดียวกัน
func (h *cancelOrderCommandHandler) Handle(ctx context.Context, cmd *CancelOrderCommand) (*mediator.NoResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:CancelOrderCommand")
	defer span.End()

	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, _ func(transactor.PostCommitHook)) error {

		order, err := h.orderRepo.FindByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if order == nil {
			return domainerrors.ErrOrderNotFound
		}
		if order.UserID != cmd.UserID {
			return domainerrors.ErrOrderNotOwned
		}

		if err := order.Cancel(); err != nil {
			return err
		}

		// คืน point ที่แลกไว้ตอน checkout
		if order.PointsRedeemed.IsPositive() {
			if _, err := mediator.Send[*rewardscontract.RefundPointsCommand, *mediator.NoResponse](
				ctx,
				&rewardscontract.RefundPointsCommand{
					UserID:        order.UserID,
					OrderID:       order.ID,
					Points:        order.PointsRedeemed,
					TransactionID: order.RewardTransactionID.Int64,
				},
			); err != nil {
				return err
			}
		}

		return h.orderRepo.UpdateStatus(ctx, order)
	})

	if err != nil {
		return nil, err
	}

	return &mediator.NoResponse{}, nil
}
