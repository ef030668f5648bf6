package model

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type CurrencyPack struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	BaseAmount   int64           `json:"base_amount"`
	BonusPercent decimal.Decimal `json:"bonus_percent"`
	Price        decimal.Decimal `json:"price"`
	Active       bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
}

// Bonus is floor(BaseAmount * BonusPercent / 100).
func (p CurrencyPack) Bonus() int64 {
	if p.BaseAmount <= 0 || !p.BonusPercent.IsPositive() {
		return 0
	}
	return decimal.NewFromInt(p.BaseAmount).Mul(p.BonusPercent).Div(hundred).Floor().IntPart()
}

func (p CurrencyPack) TotalCurrency() int64 {
	return p.BaseAmount + p.Bonus()
}

type CurrencyPackOutput struct {
	CurrencyPack
	TotalCurrency int64 `json:"total_currency"`
}
