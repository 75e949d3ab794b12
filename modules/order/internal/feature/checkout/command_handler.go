package checkout

import (
	"context"

	"nachna/modules/order/internal/model"
	"nachna/modules/order/internal/repository"
	"nachna/modules/order/payment"
	"nachna/shared/common/domain"
	"nachna/shared/common/logger"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/catalogcontract"
	"nachna/shared/contract/rewardscontract"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

type checkoutCommandHandler struct {
	transactor transactor.Transactor
	orderRepo  repository.OrderRepository
	gateway    payment.Gateway
	dispatcher domain.DomainEventDispatcher
}

func NewCheckoutCommandHandler(
	transactor transactor.Transactor,
	orderRepo repository.OrderRepository,
	gateway payment.Gateway,
	dispatcher domain.DomainEventDispatcher) *checkoutCommandHandler {
	return &checkoutCommandHandler{
		transactor: transactor,
		orderRepo:  orderRepo,
		gateway:    gateway,
		dispatcher: dispatcher,
	}
}

// Handle สร้าง order จาก workshop ที่เลือก
// ถ้า user เลือกแลก point จะตัดยอดใน transaction เดียวกับการสร้าง order
// point จะไม่หายถ้าสร้าง order หรือเปิด payment ไม่สำเร็จ
func (h *checkoutCommandHandler) Handle(ctx context.Context, cmd *CheckoutCommand) (*CheckoutResponse, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:CheckoutCommand")
	defer span.End()

	// ตรวจสอบ workshop และ resolve ราคา
	workshop, err := mediator.Send[*catalogcontract.GetWorkshopByIDQuery, *catalogcontract.GetWorkshopByIDQueryResult](
		ctx,
		&catalogcontract.GetWorkshopByIDQuery{ID: cmd.WorkshopID},
	)
	if err != nil {
		return nil, err
	}

	var order *model.Order
	err = h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {

		discount := decimal.Zero
		finalAmount := workshop.Amount
		var redemptionTxID int64

		// ตัดยอด point ก่อนสร้าง order ถ้า order ไม่สำเร็จ rollback ทั้งคู่
		if cmd.PointsToRedeem.IsPositive() {
			redeemed, err := mediator.Send[*rewardscontract.RedeemPointsCommand, *rewardscontract.RedeemPointsCommandResult](
				ctx,
				&rewardscontract.RedeemPointsCommand{
					UserID:      cmd.UserID,
					WorkshopID:  cmd.WorkshopID,
					Points:      cmd.PointsToRedeem,
					OrderAmount: workshop.Amount,
				},
			)
			if err != nil {
				return err
			}

			discount = redeemed.DiscountAmount
			finalAmount = redeemed.FinalAmount
			redemptionTxID = redeemed.TransactionID
		}

		order = model.NewOrder(cmd.UserID, cmd.WorkshopID,
			workshop.Amount, discount, finalAmount, cmd.PointsToRedeem)
		if redemptionTxID != 0 {
			order.AttachRedemption(redemptionTxID)
		}

		// เปิด payment intent ก่อน insert เพื่อเก็บ ref กับ QR ในแถวเดียว
		intent, err := h.gateway.CreatePayment(ctx, order.ID, order.FinalAmount)
		if err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}
		order.AttachPayment(intent.ReferenceID, intent.QRCodeURL)

		// บันทึกลงฐานข้อมูล
		if err := h.orderRepo.Create(ctx, order); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		events := order.PullDomainEvents()
		registerPostCommitHook(func(ctx context.Context) error {
			return h.dispatcher.Dispatch(ctx, events)
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &CheckoutResponse{
		OrderID:        order.ID,
		OriginalAmount: order.OriginalAmount,
		DiscountAmount: order.DiscountAmount,
		FinalAmount:    order.FinalAmount,
		PointsRedeemed: order.PointsRedeemed,
		PaymentRef:     order.PaymentRef.String,
		QRCodeURL:      order.QRCodeURL.String,
	}, nil
}
