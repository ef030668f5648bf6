package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

const (
	ItemTypeCourse       = "course"
	ItemTypeCurrencyPack = "currency_pack"
)

type Order struct {
	ID             int64           `json:"ID"`
	Code           string          `json:"code"`
	UserID         int             `json:"userID"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	ItemType       string          `json:"itemType"`
	ItemRef        string          `json:"itemRef"`
	Status         string          `json:"status"`
	CouponCode     *string         `json:"couponCode"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	ProviderTxnID  string          `json:"providerTxnID"`
	FailureReason  string          `json:"failureReason"`
	PaidAt         *time.Time      `json:"paidAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// HasCoupon reports whether a coupon was applied when the order was created.
func (o Order) HasCoupon() bool {
	return o.CouponCode != nil && *o.CouponCode != ""
}

type OrderInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ItemType    string          `json:"item_type"`
	ItemRef     string          `json:"item_id"`
	CouponCode  string          `json:"coupon_code"`
}

type CurrencyPackOrderInput struct {
	PackID     int    `json:"pack_id"`
	CouponCode string `json:"coupon_code"`
}

type OrderOutput struct {
	Code               string          `json:"order_code"`
	Amount             decimal.Decimal `json:"amount"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Description        string          `json:"description"`
	Status             string          `json:"status"`
	ItemType           string          `json:"item_type"`
	ItemRef            string          `json:"item_id"`
	CouponCode         *string         `json:"coupon_code"`
	PaymentInstruction string          `json:"payment_instruction"`
	CreatedAt          time.Time       `json:"created_at"`
}
