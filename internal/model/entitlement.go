package model

import "time"

const (
	FulfillmentStatusPending = "PENDING"
	FulfillmentStatusDone    = "DONE"
)

type Entitlement struct {
	ID          int64
	UserID      int
	CourseID    int
	OrderID     int64
	PurchasedAt time.Time
	ExpiresAt   *time.Time
	Active      bool
}

// Fulfillment tracks the fan-out of one paid order.
type Fulfillment struct {
	OrderID     int64
	Status      string
	Attempts    int
	LastError   string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
