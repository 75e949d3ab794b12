// Package session คุม lifecycle ของ flow การแลก point ตอน checkout หนึ่งรอบ
// ตั้งแต่โหลด quote จนถึง confirm/skip/cancel
package session

import (
	"context"
	"errors"
	"sync"

	"nachna/modules/rewards/redemption"

	"github.com/shopspring/decimal"
)

// State ของ session หนึ่งรอบ เปลี่ยนได้ทางเดียวตามลำดับ flow
// confirmed, skipped, cancelled เป็น terminal state ทั้งหมด
type State string

const (
	StateLoading          State = "loading"
	StateQuoteReady       State = "quote_ready"
	StateQuoteUnavailable State = "quote_unavailable"
	StateError            State = "error"
	StateConfirmed        State = "confirmed"
	StateSkipped          State = "skipped"
	StateCancelled        State = "cancelled"
)

// Terminal บอกว่า state นี้จบ flow แล้วหรือยัง
func (s State) Terminal() bool {
	switch s {
	case StateConfirmed, StateSkipped, StateCancelled:
		return true
	}
	return false
}

var (
	ErrSessionClosed    = errors.New("redemption session already closed")
	ErrRedeemInProgress = errors.New("a redeem request is already in flight")
	ErrNotReady         = errors.New("no redemption quote available")
	ErrNothingSelected  = errors.New("no points selected to redeem")
	// ErrPolicyViolation คือ server ปฏิเสธเพราะเกินเพดาน ณ เวลานั้น
	// (quote ฝั่งเราอาจ stale) ต้องโหลด quote ใหม่ก่อนลองอีกครั้ง
	ErrPolicyViolation = errors.New("redemption rejected by server policy")
)

// Ledger คือฝั่ง server ของ rewards ที่ session คุยด้วย
type Ledger interface {
	FetchQuote(ctx context.Context, workshopID int64, workshopAmount decimal.Decimal) (redemption.Quote, error)
	Redeem(ctx context.Context, workshopID int64, points, orderAmount decimal.Decimal) (*Confirmation, error)
}

// Confirmation คือผลการ debit ที่ server ยืนยันแล้ว
type Confirmation struct {
	TransactionID  int64
	PointsRedeemed decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

// Outcome สรุปผลของ session เมื่อจบ flow สำหรับส่งต่อให้ขั้นตอนจ่ายเงิน
// ถ้า user ไม่แลก (skip หรือแลก 0) Redemption จะเป็น nil
// และ FinalAmount เท่ากับราคาเต็ม
type Outcome struct {
	Redemption     *Confirmation
	PointsRedeemed decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
}

// Session คือ state machine ของการแลก point หนึ่งรอบต่อหนึ่ง workshop
// ปลอดภัยต่อการเรียกพร้อมกันหลาย goroutine (เช่น UI กดรัว)
type Session struct {
	mu sync.Mutex

	ledger         Ledger
	workshopID     int64
	workshopAmount decimal.Decimal

	state    State
	quote    redemption.Quote
	points   decimal.Decimal
	loadErr  error
	inFlight bool
	outcome  *Outcome
}

// New สร้าง session ใหม่ใน state loading ต้องเรียก Load ก่อนใช้งาน
func New(ledger Ledger, workshopID int64, workshopAmount decimal.Decimal) *Session {
	return &Session{
		ledger:         ledger,
		workshopID:     workshopID,
		workshopAmount: workshopAmount,
		state:          StateLoading,
	}
}

// Load ดึง quote จาก ledger แล้วเปลี่ยนเป็น quote_ready หรือ quote_unavailable
// เรียกซ้ำได้จาก state error เพื่อ retry แต่ห้ามเรียกหลังจบ flow แล้ว
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != StateLoading && s.state != StateError {
		s.mu.Unlock()
		return nil
	}
	s.state = StateLoading
	s.loadErr = nil
	s.mu.Unlock()

	// ปล่อย lock ระหว่างรอ network เพื่อให้ Cancel ทำงานได้
	quote, err := s.ledger.FetchQuote(ctx, s.workshopID, s.workshopAmount)

	s.mu.Lock()
	defer s.mu.Unlock()

	// user อาจปิดหน้าจอไปแล้วระหว่างรอ ผลลัพธ์ที่มาทีหลังต้องถูกทิ้ง
	if s.state.Terminal() {
		return ErrSessionClosed
	}

	if err != nil {
		s.state = StateError
		s.loadErr = err
		return err
	}

	s.quote = quote
	if !quote.CanRedeem {
		s.state = StateQuoteUnavailable
		s.points = decimal.Zero
		return nil
	}

	s.state = StateQuoteReady
	s.points = quote.RecommendedRedemption
	return nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quote คืน quote ล่าสุด มีความหมายเฉพาะเมื่อ state เป็น
// quote_ready หรือ quote_unavailable
func (s *Session) Quote() redemption.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

// LoadErr คืน error ล่าสุดจากการโหลด quote (state error เท่านั้น)
func (s *Session) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

func (s *Session) PointsToRedeem() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

// SetPoints เปลี่ยนจำนวน point ที่เลือก ค่าจะถูก clamp เข้า [0, max] เสมอ
// ไม่มีทาง error จากค่าเกินช่วง รับได้เฉพาะตอน quote_ready และไม่มี debit ค้าง
func (s *Session) SetPoints(points decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateQuoteReady {
		return ErrNotReady
	}
	if s.inFlight {
		return ErrRedeemInProgress
	}

	s.points = redemption.ClampPoints(points, s.quote.MaxRedeemablePoints)
	return nil
}

// QuickSelect เลือกเป็นสัดส่วนของ max เช่น 0.25, 0.5, 1.0
func (s *Session) QuickSelect(fraction decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateQuoteReady {
		return ErrNotReady
	}
	if s.inFlight {
		return ErrRedeemInProgress
	}

	s.points = redemption.ClampPoints(
		s.quote.MaxRedeemablePoints.Mul(fraction), s.quote.MaxRedeemablePoints)
	return nil
}

// Preview คำนวณส่วนลดจากค่าที่เลือกอยู่ตอนนี้ สำหรับอัพเดท UI ทุกครั้งที่ขยับ
// ถ้ายังไม่มี quote จะคืนราคาเต็มโดยไม่มีส่วนลด
func (s *Session) Preview() redemption.Calculation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateQuoteReady {
		return redemption.Calculation{FinalAmount: s.workshopAmount}
	}

	calc, err := redemption.CalculateFinalAmount(
		s.workshopAmount, s.points, s.quote.ExchangeRate)
	if err != nil {
		return redemption.Calculation{FinalAmount: s.workshopAmount}
	}
	return calc
}

// Confirm ยิง debit ไปที่ ledger ด้วยจำนวน point ที่เลือกอยู่
//
// กันกดซ้ำด้วย inFlight flag: มีได้แค่ request เดียวต่อ session
// ถ้า debit fail state กลับเป็น quote_ready ค่าที่เลือกไว้ไม่หาย
// ถ้า session ถูก cancel ระหว่างรอ ผลลัพธ์จะถูกทิ้งทั้ง request
func (s *Session) Confirm(ctx context.Context) (*Outcome, error) {
	s.mu.Lock()
	if s.state.Terminal() {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if s.state != StateQuoteReady {
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrRedeemInProgress
	}
	if !s.points.IsPositive() {
		s.mu.Unlock()
		return nil, ErrNothingSelected
	}
	s.inFlight = true
	points := s.points
	s.mu.Unlock()

	conf, err := s.ledger.Redeem(ctx, s.workshopID, points, s.workshopAmount)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	// cancel ชนะเสมอ แม้ debit จะสำเร็จฝั่ง server ก็ไม่เอาผลมาใช้
	// (server เป็นเจ้าของ ledger การ reconcile เป็นเรื่องของ order flow)
	if s.state == StateCancelled {
		return nil, ErrSessionClosed
	}

	if err != nil {
		// ยังอยู่ quote_ready ให้ user ลองใหม่ได้ ค่าเดิมยังอยู่
		return nil, err
	}

	s.state = StateConfirmed
	s.outcome = &Outcome{
		Redemption:     conf,
		PointsRedeemed: conf.PointsRedeemed,
		DiscountAmount: conf.DiscountAmount,
		FinalAmount:    conf.FinalAmount,
	}
	return s.outcome, nil
}

// Skip จบ flow โดยไม่แลก point จ่ายราคาเต็ม
// เรียกได้จากทุก state ที่ยังไม่จบ รวมถึง quote_unavailable และ error
func (s *Session) Skip() (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return nil, ErrSessionClosed
	}
	if s.inFlight {
		return nil, ErrRedeemInProgress
	}

	s.state = StateSkipped
	s.outcome = &Outcome{
		PointsRedeemed: decimal.Zero,
		DiscountAmount: decimal.Zero,
		FinalAmount:    s.workshopAmount,
	}
	return s.outcome, nil
}

// Cancel ทิ้ง session ทั้งรอบ (user ออกจากหน้า checkout)
// request ที่ค้างอยู่จะถูกทิ้งผลเมื่อกลับมา เรียกซ้ำบน session ที่จบแล้วไม่เป็นไร
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return
	}
	s.state = StateCancelled
}

// Outcome คืนผลสรุปของ session จะมีค่าเฉพาะหลัง confirmed หรือ skipped
func (s *Session) Outcome() (*Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome == nil {
		return nil, false
	}
	return s.outcome, true
}
