package redeem

import (
	"context"
	"testing"

	"nachna/modules/rewards/domainerrors"
	"nachna/modules/rewards/internal/model"
	"nachna/modules/rewards/redemption"
	"nachna/shared/common/domain"
	"nachna/shared/common/storage/sqldb/transactor"
	"nachna/shared/contract/rewardscontract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeTransactor รัน txFunc ตรง ๆ แล้วเรียก hook เมื่อไม่มี error
// เลียนแบบพฤติกรรม commit/rollback โดยไม่ต้องมีฐานข้อมูลจริง
type fakeTransactor struct {
	hooksRan int
}

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
		f.hooksRan++
	}
	return nil
}

type fakeRewardRepo struct {
	balance *model.RewardBalance

	createdTx      *model.RewardTransaction
	updatedBalance *model.RewardBalance
}

func (f *fakeRewardRepo) FindBalanceByUserID(ctx context.Context, userID string) (*model.RewardBalance, error) {
	return f.balance, nil
}

func (f *fakeRewardRepo) FindBalanceByUserIDForUpdate(ctx context.Context, userID string) (*model.RewardBalance, error) {
	return f.balance, nil
}

func (f *fakeRewardRepo) CreateBalance(ctx context.Context, balance *model.RewardBalance) error {
	f.balance = balance
	return nil
}

func (f *fakeRewardRepo) UpdateBalance(ctx context.Context, balance *model.RewardBalance) error {
	f.updatedBalance = balance
	return nil
}

func (f *fakeRewardRepo) CreateTransaction(ctx context.Context, tx *model.RewardTransaction) error {
	f.createdTx = tx
	return nil
}

func (f *fakeRewardRepo) FindTransactionByID(ctx context.Context, id int64) (*model.RewardTransaction, error) {
	return f.createdTx, nil
}

type captureHandler struct {
	events []domain.DomainEvent
}

func (c *captureHandler) Handle(ctx context.Context, evt domain.DomainEvent) error {
	c.events = append(c.events, evt)
	return nil
}

func testPolicy() redemption.Policy {
	return redemption.Policy{
		ExchangeRate:        decimal.NewFromInt(1),
		CapFraction:         decimal.NewFromInt(1),
		RecommendedFraction: decimal.NewFromInt(1),
		EarnRate:            d("0.05"),
	}
}

func existingBalance(available string) *model.RewardBalance {
	b := model.NewRewardBalance("user-1")
	b.AvailableBalance = d(available)
	b.LifetimeEarned = d(available)
	return b
}

func TestRedeemPointsSuccess(t *testing.T) {
	repo := &fakeRewardRepo{balance: existingBalance("500")}
	trx := &fakeTransactor{}
	capture := &captureHandler{}
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register("PointsRedeemed", capture)

	h := NewRedeemPointsCommandHandler(trx, testPolicy(), repo, dispatcher)

	result, err := h.Handle(context.Background(), &rewardscontract.RedeemPointsCommand{
		UserID:      "user-1",
		WorkshopID:  7,
		Points:      d("300"),
		OrderAmount: d("1000"),
	})
	require.NoError(t, err)

	assert.True(t, result.PointsRedeemed.Equal(d("300")))
	assert.True(t, result.DiscountAmount.Equal(d("300")))
	assert.True(t, result.FinalAmount.Equal(d("700")))
	assert.Equal(t, repo.createdTx.ID, result.TransactionID)

	// ยอดคงเหลือถูกตัดและบันทึก
	require.NotNil(t, repo.updatedBalance)
	assert.True(t, repo.updatedBalance.AvailableBalance.Equal(d("200")))
	assert.True(t, repo.updatedBalance.LifetimeRedeemed.Equal(d("300")))

	// ledger entry ตรงกับที่ตัด
	require.NotNil(t, repo.createdTx)
	assert.Equal(t, model.TransactionTypeRedeem, repo.createdTx.TransactionType)
	assert.Equal(t, int64(7), repo.createdTx.ReferenceID)

	// domain event ถูก dispatch หลัง commit
	assert.Equal(t, 1, trx.hooksRan)
	require.Len(t, capture.events, 1)
}

func TestRedeemPointsNoAccount(t *testing.T) {
	repo := &fakeRewardRepo{balance: nil}
	h := NewRedeemPointsCommandHandler(&fakeTransactor{}, testPolicy(), repo,
		domain.NewSimpleDomainEventDispatcher())

	_, err := h.Handle(context.Background(), &rewardscontract.RedeemPointsCommand{
		UserID:      "user-1",
		WorkshopID:  7,
		Points:      d("10"),
		OrderAmount: d("1000"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoRewardAccount)
}

func TestRedeemPointsExceedsMax(t *testing.T) {
	// balance 500 แต่ขอแลก 600 ต้องโดนปฏิเสธแบบ conflict
	repo := &fakeRewardRepo{balance: existingBalance("500")}
	h := NewRedeemPointsCommandHandler(&fakeTransactor{}, testPolicy(), repo,
		domain.NewSimpleDomainEventDispatcher())

	_, err := h.Handle(context.Background(), &rewardscontract.RedeemPointsCommand{
		UserID:      "user-1",
		WorkshopID:  7,
		Points:      d("600"),
		OrderAmount: d("1000"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionExceedsMax)
	assert.Nil(t, repo.createdTx)
	assert.Nil(t, repo.updatedBalance)
}

func TestRedeemPointsExceedsCap(t *testing.T) {
	// cap 50% ของ order 1000 = 500 point แม้ balance จะพอ
	policy := testPolicy()
	policy.CapFraction = d("0.5")

	repo := &fakeRewardRepo{balance: existingBalance("2000")}
	h := NewRedeemPointsCommandHandler(&fakeTransactor{}, policy, repo,
		domain.NewSimpleDomainEventDispatcher())

	_, err := h.Handle(context.Background(), &rewardscontract.RedeemPointsCommand{
		UserID:      "user-1",
		WorkshopID:  7,
		Points:      d("600"),
		OrderAmount: d("1000"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrRedemptionExceedsMax)
}

func TestRedeemPointsZeroPoints(t *testing.T) {
	h := NewRedeemPointsCommandHandler(&fakeTransactor{}, testPolicy(),
		&fakeRewardRepo{balance: existingBalance("500")},
		domain.NewSimpleDomainEventDispatcher())

	_, err := h.Handle(context.Background(), &rewardscontract.RedeemPointsCommand{
		UserID:      "user-1",
		WorkshopID:  7,
		Points:      decimal.Zero,
		OrderAmount: d("1000"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNothingToRedeem)
}
