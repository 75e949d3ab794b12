package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nachna/modules/rewards/redemption"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeLedger จำลองฝั่ง server ปรับพฤติกรรมผ่าน field ได้ทีละ test
type fakeLedger struct {
	mu sync.Mutex

	quote    redemption.Quote
	quoteErr error

	redeemErr   error
	redeemCalls int
	// blockRedeem ถ้าไม่เป็น nil Redeem จะค้างรอจน channel ถูกปิด
	blockRedeem chan struct{}
}

func (f *fakeLedger) FetchQuote(ctx context.Context, workshopID int64, amount decimal.Decimal) (redemption.Quote, error) {
	if f.quoteErr != nil {
		return redemption.Quote{}, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeLedger) Redeem(ctx context.Context, workshopID int64, points, orderAmount decimal.Decimal) (*Confirmation, error) {
	f.mu.Lock()
	f.redeemCalls++
	block := f.blockRedeem
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.redeemErr != nil {
		return nil, f.redeemErr
	}

	discount := points // rate 1 ใน test ทั้งไฟล์
	return &Confirmation{
		TransactionID:  42,
		PointsRedeemed: points,
		DiscountAmount: discount,
		FinalAmount:    orderAmount.Sub(discount),
	}, nil
}

func (f *fakeLedger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.redeemCalls
}

func readyLedger() *fakeLedger {
	return &fakeLedger{
		quote: redemption.Quote{
			ExchangeRate:          d("1"),
			WorkshopAmount:        d("1000"),
			MaxRedeemablePoints:   d("500"),
			RecommendedRedemption: d("500"),
			CanRedeem:             true,
		},
	}
}

func TestLoadInitializesToRecommended(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	assert.Equal(t, StateLoading, s.State())

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, StateQuoteReady, s.State())
	assert.True(t, s.PointsToRedeem().Equal(d("500")))

	preview := s.Preview()
	assert.True(t, preview.FinalAmount.Equal(d("500")))
}

func TestLoadZeroBalanceUnavailable(t *testing.T) {
	ledger := &fakeLedger{
		quote: redemption.Quote{
			ExchangeRate:   d("1"),
			WorkshopAmount: d("1000"),
			Message:        "No reward points available yet.",
		},
	}
	s := New(ledger, 1, d("1000"))

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateQuoteUnavailable, s.State())

	// confirm ทำไม่ได้ แต่ skip ได้เสมอ และได้ราคาเต็ม
	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrNotReady)

	out, err := s.Skip()
	require.NoError(t, err)
	assert.Nil(t, out.Redemption)
	assert.True(t, out.FinalAmount.Equal(d("1000")))
	assert.Equal(t, StateSkipped, s.State())
}

func TestLoadErrorThenRetry(t *testing.T) {
	ledger := readyLedger()
	ledger.quoteErr = errors.New("connection refused")
	s := New(ledger, 1, d("1000"))

	require.Error(t, s.Load(context.Background()))
	assert.Equal(t, StateError, s.State())
	assert.Error(t, s.LoadErr())

	ledger.quoteErr = nil
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateQuoteReady, s.State())
}

func TestSetPointsClampsAboveMax(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.SetPoints(d("9999")))
	assert.True(t, s.PointsToRedeem().Equal(d("500")))

	require.NoError(t, s.SetPoints(d("-5")))
	assert.True(t, s.PointsToRedeem().IsZero())

	require.NoError(t, s.SetPoints(d("300.4")))
	assert.True(t, s.PointsToRedeem().Equal(d("300")))
}

func TestQuickSelectFractions(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.QuickSelect(d("0.5")))
	assert.True(t, s.PointsToRedeem().Equal(d("250")))

	// เลือก max ต้องได้ max เป๊ะ ไม่หลุดจากการปัดเศษ
	require.NoError(t, s.QuickSelect(d("1")))
	assert.True(t, s.PointsToRedeem().Equal(d("500")))
}

func TestConfirmSuccess(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetPoints(d("300")))

	out, err := s.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateConfirmed, s.State())
	require.NotNil(t, out.Redemption)
	assert.Equal(t, int64(42), out.Redemption.TransactionID)
	assert.True(t, out.PointsRedeemed.Equal(d("300")))
	assert.True(t, out.DiscountAmount.Equal(d("300")))
	assert.True(t, out.FinalAmount.Equal(d("700")))

	got, ok := s.Outcome()
	require.True(t, ok)
	assert.Equal(t, out, got)

	// session จบแล้ว ทำอะไรต่อไม่ได้
	_, err = s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.Load(context.Background()), ErrSessionClosed)
}

func TestConfirmZeroPoints(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetPoints(decimal.Zero))

	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Equal(t, StateQuoteReady, s.State())
}

func TestConfirmFailureKeepsSelection(t *testing.T) {
	ledger := readyLedger()
	ledger.redeemErr = ErrPolicyViolation
	s := New(ledger, 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.SetPoints(d("300")))

	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrPolicyViolation)

	// กลับมา quote_ready ค่าที่เลือกไว้ยังอยู่ ลองใหม่ได้
	assert.Equal(t, StateQuoteReady, s.State())
	assert.True(t, s.PointsToRedeem().Equal(d("300")))

	ledger.redeemErr = nil
	_, err = s.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, s.State())
}

func TestConfirmDoubleTapSingleRequest(t *testing.T) {
	ledger := readyLedger()
	ledger.blockRedeem = make(chan struct{})
	s := New(ledger, 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := s.Confirm(context.Background())
		assert.NoError(t, err)
	}()

	// รอให้ request แรกเข้าไปค้างใน ledger ก่อน
	require.Eventually(t, func() bool { return ledger.calls() == 1 },
		time.Second, time.Millisecond)

	// กดซ้ำระหว่างรอ ต้องโดนปัดทันที ไม่ยิงเพิ่ม
	_, err := s.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrRedeemInProgress)
	assert.ErrorIs(t, s.SetPoints(d("1")), ErrRedeemInProgress)
	_, err = s.Skip()
	assert.ErrorIs(t, err, ErrRedeemInProgress)

	close(ledger.blockRedeem)
	<-done

	assert.Equal(t, 1, ledger.calls())
	assert.Equal(t, StateConfirmed, s.State())
}

func TestCancelDiscardsInFlightResult(t *testing.T) {
	ledger := readyLedger()
	ledger.blockRedeem = make(chan struct{})
	s := New(ledger, 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))

	done := make(chan error, 1)
	go func() {
		_, err := s.Confirm(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool { return ledger.calls() == 1 },
		time.Second, time.Millisecond)

	// user ออกจากหน้า checkout ระหว่าง request ค้าง
	s.Cancel()
	close(ledger.blockRedeem)

	assert.ErrorIs(t, <-done, ErrSessionClosed)
	assert.Equal(t, StateCancelled, s.State())

	_, ok := s.Outcome()
	assert.False(t, ok)
}

func TestSkipFromErrorState(t *testing.T) {
	ledger := readyLedger()
	ledger.quoteErr = errors.New("timeout")
	s := New(ledger, 1, d("1000"))
	require.Error(t, s.Load(context.Background()))

	out, err := s.Skip()
	require.NoError(t, err)
	assert.True(t, out.FinalAmount.Equal(d("1000")))
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New(readyLedger(), 1, d("1000"))
	require.NoError(t, s.Load(context.Background()))

	s.Cancel()
	s.Cancel()
	assert.Equal(t, StateCancelled, s.State())

	// cancel แล้วไม่มีทางกลับมาแลกต่อ
	assert.ErrorIs(t, s.SetPoints(d("1")), ErrNotReady)
	_, err := s.Skip()
	assert.ErrorIs(t, err, ErrSessionClosed)
}
