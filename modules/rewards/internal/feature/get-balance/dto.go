package getbalance

import "github.com/shopspring/decimal"

type GetBalanceResponse struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	LifetimeEarned   decimal.Decimal `json:"lifetime_earned"`
	LifetimeRedeemed decimal.Decimal `json:"lifetime_redeemed"`
}
