package model

import (
	"github.com/shopspring/decimal"
)

const TransferTypeOut = "out"

const (
	ErrorCodeUnauthorized    = "UNAUTHORIZED"
	ErrorCodeInvalidPayload  = "INVALID_PAYLOAD"
	ErrorCodeOrderIDNotFound = "ORDER_ID_NOT_FOUND"
	ErrorCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrorCodeAmountMismatch  = "AMOUNT_MISMATCH"
	ErrorCodeOrderNotPending = "ORDER_NOT_PENDING"
	ErrorCodeProcessingError = "PROCESSING_ERROR"
)

// Transaction is a provider bank-transfer notification.
type Transaction struct {
	ID            int64           `json:"id"`
	Gateway       string          `json:"gateway"`
	Date          string          `json:"transactionDate"`
	AccountNumber string          `json:"accountNumber"`
	Code          *string         `json:"code"`
	Content       string          `json:"content"`
	TransferType  string          `json:"transferType"`
	Amount        decimal.Decimal `json:"transferAmount"`
	ReferenceCode string          `json:"referenceCode"`
	Description   string          `json:"description"`
}

type SettlementOutcome int

const (
	OutcomeProcessed SettlementOutcome = iota
	OutcomeAlreadyProcessed
	OutcomeOrderNotFound
	OutcomeOrderNotPending
	OutcomeAmountMismatch
)

type SettlementResult struct {
	Outcome   SettlementOutcome
	OrderCode string
	Expected  decimal.Decimal
	Received  decimal.Decimal
	Overpaid  bool
}

type WebhookResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   string `json:"order_id,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}
