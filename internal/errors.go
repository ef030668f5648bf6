package internal

import "errors"

var (
	ErrNoRecords = errors.New("no records")
	ErrForbidden = errors.New("forbidden")

	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidItemType = errors.New("currency packs must be ordered through the currency pack endpoint")
	ErrFreeOrder       = errors.New("discounted amount must be positive")
	ErrOrderCodeTaken  = errors.New("order code is already taken")
	ErrOrderCodeSpace  = errors.New("could not allocate a unique order code")

	ErrCouponNotFound  = errors.New("coupon does not exist")
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	ErrCurrencyPackNotFound = errors.New("currency pack not found")
	ErrCurrencyPackInactive = errors.New("currency pack is not active")

	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidPayload = errors.New("invalid payload")
)

// IsCouponRejection reports whether err is a client-facing coupon rejection.
func IsCouponRejection(err error) bool {
	return errors.Is(err, ErrCouponNotFound) ||
		errors.Is(err, ErrCouponInactive) ||
		errors.Is(err, ErrCouponExpired) ||
		errors.Is(err, ErrCouponExhausted)
}
