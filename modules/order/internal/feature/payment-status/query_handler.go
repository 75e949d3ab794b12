package paymentstatus

import (
	"context"

	"nachna/modules/order/domainerrors"
	"nachna/modules/order/internal/model"
	"nachna/modules/order/internal/repository"
	"nachna/modules/order/payment"
	"nachna/shared/common/logger"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"go.opentelemetry.io/otel/trace"
)

type getPaymentStatusQueryHandler struct {
	transactor transactor.Transactor
	orderRepo  repository.OrderRepository
	gateway    payment.Gateway
}

func NewGetPaymentStatusQueryHandler(
	transactor transactor.Transactor,
	orderRepo repository.OrderRepository,
	gateway payment.Gateway) *getPaymentStatusQueryHandler {
	return &getPaymentStatusQueryHandler{
		transactor: transactor,
		orderRepo:  orderRepo,
		gateway:    gateway,
	}
}

// Handle ถามสถานะจาก gateway แล้ว reconcile เข้าฐานข้อมูล
// ถ้า gateway บอกจ่ายแล้ว order จะถูก mark paid และสะสม point ให้ user
// เรียกซ้ำกี่ครั้งก็ได้ order ที่จ่ายแล้วตอบสถานะเดิมเฉย ๆ
func (h *getPaymentStatusQueryHandler) Handle(ctx context.Context, query *GetPaymentStatusQuery) (*PaymentStatusResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:GetPaymentStatusQuery")
	defer span.End()

	order, err := h.orderRepo.FindByID(ctx, query.OrderID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrOrderNotFound
	}
	if order.UserID != query.UserID {
		return nil, domainerrors.ErrOrderNotOwned
	}

	// order ที่จบแล้วไม่ต้องถาม gateway อีก
	if order.Status != model.OrderStatusPendingPayment || !order.PaymentRef.Valid {
		return &PaymentStatusResponse{OrderID: order.ID, Status: string(order.Status)}, nil
	}

	status, err := h.gateway.GetStatus(ctx, order.PaymentRef.String)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, domainerrors.ErrPaymentFailure
	}

	if status != payment.StatusPaid {
		return &PaymentStatusResponse{OrderID: order.ID, Status: string(order.Status)}, nil
	}

	err = h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {

		// อ่านซ้ำใต้ lock กัน request สถานะวิ่งมาพร้อมกันสองตัว
		locked, err := h.orderRepo.FindByIDForUpdate(ctx, order.ID)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		if locked.Status == model.OrderStatusPaid {
			order = locked
			return nil
		}

		if err := locked.MarkPaid(); err != nil {
			return err
		}
		if err := h.orderRepo.UpdateStatus(ctx, locked); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		order = locked

		// สะสม point จากยอดที่จ่ายจริง หลัง commit แล้วเท่านั้น
		registerPostCommitHook(func(ctx context.Context) error {
			_, err := mediator.Send[*rewardscontract.AccruePointsCommand, *mediator.NoResponse](
				ctx,
				&rewardscontract.AccruePointsCommand{
					UserID:      locked.UserID,
					OrderID:     locked.ID,
					OrderAmount: locked.FinalAmount,
				},
			)
			return err
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &PaymentStatusResponse{OrderID: order.ID, Status: string(order.Status)}, nil
}
