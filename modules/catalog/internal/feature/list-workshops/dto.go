package listworkshops

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListWorkshopsQuery struct{}

type WorkshopItem struct {
	ID         int64           `json:"id"`
	StudioID   int64           `json:"studio_id"`
	Song       string          `json:"song"`
	ArtistName string          `json:"artist_name"`
	// Amount เป็น null เมื่อ workshop ไม่มีราคาที่ใช้ได้
	Amount    *decimal.Decimal `json:"amount"`
	EventDate time.Time        `json:"event_date"`
}

type ListWorkshopsResponse struct {
	Workshops []WorkshopItem `json:"workshops"`
}
