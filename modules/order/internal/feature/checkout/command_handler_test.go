package checkout

import (
	"context"
	"os"
	"testing"

	"nachna/modules/order/internal/model"
	"nachna/modules/order/payment"
	"nachna/shared/common/domain"
	"nachna/shared/common/mediator"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/catalogcontract"
	"nachna/shared/contract/rewardscontract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeTransactor struct{}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error) error {
	hooks := make([]transactor.PostCommitHook, 0)
	register := func(hook transactor.PostCommitHook) {
		hooks = append(hooks, hook)
	}

	if err := txFunc(ctx, register); err != nil {
		return err
	}

	for _, hook := range hooks {
		_ = hook(ctx)
	}
	return nil
}

type fakeOrderRepo struct {
	created *model.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error {
	f.created = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, order *model.Order) error {
	f.created = order
	return nil
}

type fakeGateway struct{}

func (f *fakeGateway) CreatePayment(ctx context.Context, orderID int64, amount decimal.Decimal) (*payment.Intent, error) {
	return &payment.Intent{ReferenceID: "pay-ref-1", QRCodeURL: "https://pay.test/qr/pay-ref-1"}, nil
}

func (f *fakeGateway) GetStatus(ctx context.Context, referenceID string) (payment.Status, error) {
	return payment.StatusPending, nil
}

type captureHandler struct {
	events []domain.DomainEvent
}

func (c *captureHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	c.events = append(c.events, evt)
	return nil
}

// fake handler ฝั่ง catalog กับ rewards ที่ลงทะเบียนแทนของจริงใน mediator
type fakeWorkshopQueryHandler struct{}

func (h *fakeWorkshopQueryHandler) Handle(ctx context.Context, query *catalogcontract.GetWorkshopByIDQuery) (*catalogcontract.GetWorkshopByIDQueryResult, error) {
	return &catalogcontract.GetWorkshopByIDQueryResult{
		ID:         query.ID,
		StudioID:   1,
		Song:       "Kala Chashma",
		ArtistName: "Test Artist",
		Amount:     d("1000"),
	}, nil
}

type fakeRedeemHandler struct {
	calls int
}

func (h *fakeRedeemHandler) Handle(ctx context.Context, cmd *rewardscontract.RedeemPointsCommand) (*rewardscontract.RedeemPointsCommandResult, error) {
	h.calls++
	discount := cmd.Points
	return &rewardscontract.RedeemPointsCommandResult{
		TransactionID:  42,
		PointsRedeemed: cmd.Points,
		DiscountAmount: discount,
		FinalAmount:    cmd.OrderAmount.Sub(discount),
	}, nil
}

var redeemHandler = &fakeRedeemHandler{}

func TestMain(m *testing.M) {
	mediator.Register(&fakeWorkshopQueryHandler{})
	mediator.Register(redeemHandler)
	os.Exit(m.Run())
}

func TestCheckoutWithRedemption(t *testing.T) {
	repo := &fakeOrderRepo{}
	capture := &captureHandler{}
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register("OrderCreated", capture)

	h := NewCheckoutCommandHandler(&fakeTransactor{}, repo, &fakeGateway{}, dispatcher)

	resp, err := h.Handle(context.Background(), &CheckoutCommand{
		UserID: "user-1",
		CheckoutRequest: CheckoutRequest{
			WorkshopID:     7,
			PointsToRedeem: d("300"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.OriginalAmount.Equal(d("1000")))
	assert.True(t, resp.DiscountAmount.Equal(d("300")))
	assert.True(t, resp.FinalAmount.Equal(d("700")))
	assert.Equal(t, "pay-ref-1", resp.PaymentRef)
	assert.NotEmpty(t, resp.QRCodeURL)

	require.NotNil(t, repo.created)
	assert.Equal(t, model.OrderStatusPendingPayment, repo.created.Status)
	assert.Equal(t, int64(42), repo.created.RewardTransactionID.Int64)

	// integration event ออกหลัง commit
	require.Len(t, capture.events, 1)
}

func TestCheckoutWithoutRedemption(t *testing.T) {
	repo := &fakeOrderRepo{}
	h := NewCheckoutCommandHandler(&fakeTransactor{}, repo, &fakeGateway{},
		domain.NewSimpleDomainEventDispatcher())

	callsBefore := redeemHandler.calls

	resp, err := h.Handle(context.Background(), &CheckoutCommand{
		UserID: "user-1",
		CheckoutRequest: CheckoutRequest{
			WorkshopID:     7,
			PointsToRedeem: decimal.Zero,
		},
	})
	require.NoError(t, err)

	// ไม่แลก point ก็ไม่มีการเรียก redeem และจ่ายราคาเต็ม
	assert.Equal(t, callsBefore, redeemHandler.calls)
	assert.True(t, resp.DiscountAmount.IsZero())
	assert.True(t, resp.FinalAmount.Equal(d("1000")))
	assert.False(t, repo.created.RewardTransactionID.Valid)
}
