package internal

//go:generate mockgen -source=webhook.go -destination=mock/mock_webhook.go -package=mock_internal

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/model"
)

var tokenSchemes = []string{"bearer ", "apikey "}

type IWebhook interface {
	Ingest(context.Context, string, []byte) model.WebhookResult
}

// Webhook turns provider callbacks into settlements. Every callback is untrusted:
// it is authenticated, parsed and correlated before any order is touched.
type Webhook struct {
	secrets [][]byte
	codes   *OrderCodes
	settler ISettler
	logger  *zap.SugaredLogger
}

func NewWebhook(webhookSecret, apiKey string, codes *OrderCodes, settler ISettler, logger *zap.SugaredLogger) *Webhook {
	w := &Webhook{codes: codes, settler: settler, logger: logger}
	for _, s := range []string{webhookSecret, apiKey} {
		if s != "" {
			w.secrets = append(w.secrets, []byte(s))
		}
	}
	return w
}

func (w Webhook) Ingest(ctx context.Context, authHeader string, body []byte) model.WebhookResult {
	if err := w.Authenticate(authHeader); err != nil {
		w.logger.Warnw("webhook rejected", "error", err)
		return model.WebhookResult{Message: err.Error(), ErrorCode: model.ErrorCodeUnauthorized}
	}

	txn, err := w.Parse(body)
	if err != nil {
		w.logger.Warnw("webhook payload rejected", "error", err)
		return model.WebhookResult{Message: err.Error(), ErrorCode: model.ErrorCodeInvalidPayload}
	}

	if strings.EqualFold(txn.TransferType, model.TransferTypeOut) {
		w.logger.Infow("outgoing transfer ignored", "txn", txn.ID)
		return model.WebhookResult{Success: true, Message: "outgoing transfer ignored"}
	}

	code, ok := w.orderCode(txn)
	if !ok {
		w.logger.Infow("no order code in transfer memo", "txn", txn.ID, "content", txn.Content)
		return model.WebhookResult{Message: "order id not found in transfer content", ErrorCode: model.ErrorCodeOrderIDNotFound}
	}

	res, err := w.settler.Settle(ctx, code, txn)
	if err != nil {
		w.logger.Errorw("settlement failed", "order", code, "txn", txn.ID, "error", err)
		return model.WebhookResult{Message: "processing error", OrderID: code, ErrorCode: model.ErrorCodeProcessingError}
	}

	return settlementResult(res)
}

// Authenticate accepts "Bearer <token>", "Apikey <token>" or a bare token matching
// either configured secret. The error never says which form was expected.
func (w Webhook) Authenticate(header string) error {
	token := strings.TrimSpace(header)
	for _, scheme := range tokenSchemes {
		if len(token) >= len(scheme) && strings.EqualFold(token[:len(scheme)], scheme) {
			token = strings.TrimSpace(token[len(scheme):])
			break
		}
	}
	if token == "" {
		return ErrUnauthorized
	}

	matched := 0
	for _, s := range w.secrets {
		matched |= subtle.ConstantTimeCompare([]byte(token), s)
	}
	if matched != 1 {
		return ErrUnauthorized
	}
	return nil
}

func (w Webhook) Parse(body []byte) (model.Transaction, error) {
	var txn model.Transaction
	if err := json.Unmarshal(body, &txn); err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidPayload, err.Error())
	}
	if txn.ID == 0 {
		return model.Transaction{}, fmt.Errorf("%w: missing transaction id", ErrInvalidPayload)
	}
	if !txn.Amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("%w: transfer amount must be positive", ErrInvalidPayload)
	}
	return txn, nil
}

// orderCode tries the provider-detected code first, then the memo fields.
func (w Webhook) orderCode(txn model.Transaction) (string, bool) {
	var sources []string
	if txn.Code != nil {
		sources = append(sources, *txn.Code)
	}
	sources = append(sources, txn.Content, txn.Description)

	for _, s := range sources {
		if code, ok := w.codes.Extract(s); ok {
			return code, true
		}
	}
	return "", false
}

func settlementResult(res model.SettlementResult) model.WebhookResult {
	switch res.Outcome {
	case model.OutcomeProcessed:
		return model.WebhookResult{Success: true, Message: "processed successfully", OrderID: res.OrderCode}
	case model.OutcomeAlreadyProcessed:
		return model.WebhookResult{Success: true, Message: "already processed", OrderID: res.OrderCode}
	case model.OutcomeOrderNotFound:
		return model.WebhookResult{Message: "order not found", OrderID: res.OrderCode, ErrorCode: model.ErrorCodeOrderNotFound}
	case model.OutcomeAmountMismatch:
		return model.WebhookResult{
			Message:   fmt.Sprintf("amount mismatch: expected %s, received %s", res.Expected.String(), res.Received.String()),
			OrderID:   res.OrderCode,
			ErrorCode: model.ErrorCodeAmountMismatch,
		}
	default:
		return model.WebhookResult{Message: "order is not pending", OrderID: res.OrderCode, ErrorCode: model.ErrorCodeOrderNotPending}
	}
}
