package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DiscountPercent     = "percent"
	DiscountFixedAmount = "fixed_amount"
)

type Coupon struct {
	ID         int
	Code       string
	Kind       string
	Value      decimal.Decimal
	MaxUsage   int
	UsageCount int
	ExpiresAt  time.Time
	Active     bool
}

// Discount is the result of applying a coupon to an amount.
type Discount struct {
	Original decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// CouponUsage is the redemption counter right after an increment.
type CouponUsage struct {
	Code       string
	UsageCount int
	MaxUsage   int
}

func (u CouponUsage) Exceeded() bool {
	return u.UsageCount > u.MaxUsage
}

type CouponValidateInput struct {
	CouponCode     string          `json:"coupon_code"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
}

type CouponValidateOutput struct {
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	Message        string          `json:"message"`
}
