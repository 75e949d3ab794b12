package catalogcontract

import (
	"github.com/shopspring/decimal"
)

// GetWorkshopByIDQuery ใช้อ่านข้อมูล workshop ข้ามโมดูล เช่น ตอน checkout
type GetWorkshopByIDQuery struct {
	ID int64
}

type GetWorkshopByIDQueryResult struct {
	ID         int64
	StudioID   int64
	Song       string
	ArtistName string
	// Amount คือราคาที่ resolve แล้วตามลำดับ current_price -> pricing_info
	Amount decimal.Decimal
}
