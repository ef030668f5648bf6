package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Notification is a payment confirmation handed to the outbound notifier.
type Notification struct {
	ID          string          `json:"id"`
	OrderCode   string          `json:"order_code"`
	UserID      int             `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	PaidAt      time.Time       `json:"paid_at"`
}
