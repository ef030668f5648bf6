package internal

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/paysettle/internal/clock"
	"github.com/DrGermanius/paysettle/internal/model"
)

var hundred = decimal.NewFromInt(100)

type CouponFinder interface {
	GetCouponByCode(context.Context, string) (model.Coupon, error)
}

// CouponEvaluator validates coupon codes against an amount. It never touches
// usage counters; those move only when an order is settled.
type CouponEvaluator struct {
	coupons CouponFinder
	clock   clock.Clock
}

func NewCouponEvaluator(coupons CouponFinder, clk clock.Clock) *CouponEvaluator {
	return &CouponEvaluator{coupons: coupons, clock: clk}
}

func (e CouponEvaluator) Evaluate(ctx context.Context, code string, amount decimal.Decimal) (model.Discount, error) {
	c, err := e.coupons.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return model.Discount{}, ErrCouponNotFound
		}
		return model.Discount{}, err
	}

	return ApplyCoupon(c, amount, e.clock.Now())
}

// ApplyCoupon checks the coupon state at now and computes the discount on amount.
// The discount is always within [0, amount].
func ApplyCoupon(c model.Coupon, amount decimal.Decimal, now time.Time) (model.Discount, error) {
	if !c.Active {
		return model.Discount{}, ErrCouponInactive
	}
	if c.ExpiresAt.Before(now) {
		return model.Discount{}, ErrCouponExpired
	}
	if c.UsageCount >= c.MaxUsage {
		return model.Discount{}, ErrCouponExhausted
	}

	var discount decimal.Decimal
	switch c.Kind {
	case model.DiscountPercent:
		discount = amount.Mul(c.Value).Div(hundred).Truncate(2)
	case model.DiscountFixedAmount:
		discount = c.Value
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(amount) {
		discount = amount
	}

	return model.Discount{
		Original: amount,
		Discount: discount,
		Final:    amount.Sub(discount),
	}, nil
}
