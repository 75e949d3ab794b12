package getworkshop

import "github.com/shopspring/decimal"

type WorkshopResponse struct {
	ID         int64           `json:"id"`
	StudioID   int64           `json:"studio_id"`
	Song       string          `json:"song"`
	ArtistName string          `json:"artist_name"`
	Amount     decimal.Decimal `json:"amount"`
}
