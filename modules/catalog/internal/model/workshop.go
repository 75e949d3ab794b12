package model

import (
	"database/sql"
	"regexp"
	"strings"
	"time"

	"nachna/shared/common/errs"

	"github.com/shopspring/decimal"
)

// Workshop คือคลาสเต้นหนึ่งรอบที่เปิดขาย
type Workshop struct {
	ID         int64  `db:"id"`
	StudioID   int64  `db:"studio_id"`
	Song       string `db:"song"`
	ArtistName string `db:"artist_name"`
	// CurrentPrice คือราคาที่ backend คำนวณไว้แล้ว อาจว่างใน record เก่า
	CurrentPrice decimal.NullDecimal `db:"current_price"`
	// PricingInfo คือข้อความราคาแบบ free form จากระบบเดิม เช่น "₹1,500 per person"
	PricingInfo sql.NullString `db:"pricing_info"`
	EventDate   time.Time      `db:"event_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var ErrNoUsableAmount = errs.BusinessRuleError("workshop has no usable price")

// ดึงตัวเลขก้อนแรกจากข้อความราคา รองรับ comma คั่นหลักและทศนิยม
var amountPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ResolveAmount คืนราคาที่ใช้คิดเงินจริง
// ลำดับความสำคัญ: current_price ก่อน ถ้าว่างค่อย parse จาก pricing_info
func (w *Workshop) ResolveAmount() (decimal.Decimal, error) {
	if w.CurrentPrice.Valid {
		return w.CurrentPrice.Decimal, nil
	}

	if w.PricingInfo.Valid {
		if match := amountPattern.FindString(w.PricingInfo.String); match != "" {
			cleaned := strings.ReplaceAll(match, ",", "")
			if amount, err := decimal.NewFromString(cleaned); err == nil {
				return amount, nil
			}
		}
	}

	return decimal.Zero, ErrNoUsableAmount
}
