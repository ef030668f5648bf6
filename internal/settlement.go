package internal

//go:generate mockgen -source=settlement.go -destination=mock/mock_settlement.go -package=mock_internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/clock"
	"github.com/DrGermanius/paysettle/internal/model"
)

type ISettler interface {
	Settle(context.Context, string, model.Transaction) (model.SettlementResult, error)
}

type INotifier interface {
	Notify(context.Context, model.Notification)
}

type IFulfiller interface {
	Fulfil(context.Context, model.Order) error
}

// SettlementEngine confirms bank transfers against pending orders. The payment
// itself is the authoritative fact: once an order is PAID nothing downstream can
// revert it, and fan-out is re-driven from the fulfillments table.
type SettlementEngine struct {
	repo               IRepository
	fulfiller          IFulfiller
	notifier           INotifier
	tolerance          decimal.Decimal
	fulfillmentTimeout time.Duration
	clock              clock.Clock
	logger             *zap.SugaredLogger
}

func NewSettlementEngine(repo IRepository, fulfiller IFulfiller, notifier INotifier, tolerance decimal.Decimal,
	fulfillmentTimeout time.Duration, clk clock.Clock, logger *zap.SugaredLogger) *SettlementEngine {
	return &SettlementEngine{
		repo:               repo,
		fulfiller:          fulfiller,
		notifier:           notifier,
		tolerance:          tolerance,
		fulfillmentTimeout: fulfillmentTimeout,
		clock:              clk,
		logger:             logger,
	}
}

func (e *SettlementEngine) Settle(ctx context.Context, code string, txn model.Transaction) (model.SettlementResult, error) {
	res := model.SettlementResult{OrderCode: code, Received: txn.Amount}

	order, err := e.repo.GetOrderByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			e.logger.Infow("settlement for unknown order", "order", code, "txn", txn.ID)
			res.Outcome = model.OutcomeOrderNotFound
			return res, nil
		}
		return res, err
	}
	res.Expected = order.Amount

	switch order.Status {
	case model.OrderStatusPending:
	case model.OrderStatusPaid:
		e.logger.Infow("order already paid", "order", code, "txn", txn.ID)
		res.Outcome = model.OutcomeAlreadyProcessed
		return res, nil
	default:
		e.logger.Warnw("settlement for order that is not pending", "order", code, "status", order.Status, "txn", txn.ID)
		res.Outcome = model.OutcomeOrderNotPending
		return res, nil
	}

	if txn.Amount.LessThan(order.Amount.Sub(e.tolerance)) {
		return e.reject(ctx, order, txn, res)
	}
	res.Overpaid = txn.Amount.GreaterThan(order.Amount.Add(e.tolerance))

	paidAt := e.clock.Now()
	won := false
	err = e.repo.WithTx(ctx, func(ctx context.Context) error {
		ok, err := e.repo.MarkOrderPaid(ctx, order.ID, txn, paidAt)
		if err != nil || !ok {
			return err
		}
		if order.HasCoupon() {
			if err = e.redeemCoupon(ctx, order); err != nil {
				return err
			}
		}
		if err = e.repo.CreateFulfillment(ctx, order.ID, paidAt); err != nil {
			return err
		}
		won = true
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("settle order %s: %w", code, err)
	}
	if !won {
		return e.lostRace(ctx, res)
	}

	order.Status = model.OrderStatusPaid
	order.PaidAt = &paidAt
	order.PaidAmount = txn.Amount
	order.ProviderTxnID = fmt.Sprint(txn.ID)

	e.logger.Infow("order paid", "order", code, "user", order.UserID, "amount", txn.Amount.String(), "txn", txn.ID)
	if res.Overpaid {
		e.logger.Warnw("order overpaid, manual reconciliation required",
			"order", code,
			"expected", order.Amount.String(),
			"received", txn.Amount.String(),
		)
	}

	e.fulfil(ctx, order)
	e.notifier.Notify(ctx, model.Notification{
		ID:          uuid.NewString(),
		OrderCode:   order.Code,
		UserID:      order.UserID,
		Amount:      order.Amount,
		Description: order.Description,
		PaidAt:      paidAt,
	})

	res.Outcome = model.OutcomeProcessed
	return res, nil
}

// reject fails an underpaid order. The order stays FAILED until an operator steps in.
func (e *SettlementEngine) reject(ctx context.Context, order model.Order, txn model.Transaction, res model.SettlementResult) (model.SettlementResult, error) {
	reason := fmt.Sprintf("transferred %s, expected %s (tolerance %s), txn %d",
		txn.Amount.String(), order.Amount.String(), e.tolerance.String(), txn.ID)

	failed, err := e.repo.MarkOrderFailed(ctx, order.ID, reason)
	if err != nil {
		return res, fmt.Errorf("fail order %s: %w", order.Code, err)
	}
	if !failed {
		return e.lostRace(ctx, res)
	}

	e.logger.Warnw("amount mismatch, order failed",
		"order", order.Code,
		"expected", order.Amount.String(),
		"received", txn.Amount.String(),
		"txn", txn.ID,
	)
	res.Outcome = model.OutcomeAmountMismatch
	return res, nil
}

// lostRace resolves a conditional update that matched no row: another delivery
// already moved the order out of PENDING.
func (e *SettlementEngine) lostRace(ctx context.Context, res model.SettlementResult) (model.SettlementResult, error) {
	current, err := e.repo.GetOrderByCode(ctx, res.OrderCode)
	if err != nil {
		return res, err
	}
	if current.Status == model.OrderStatusPaid {
		e.logger.Infow("concurrent settlement already paid the order", "order", res.OrderCode)
		res.Outcome = model.OutcomeAlreadyProcessed
		return res, nil
	}
	res.Outcome = model.OutcomeOrderNotPending
	return res, nil
}

// redeemCoupon counts the redemption. Going over the cap only warns: the order is
// already paid and is never reversed over a soft limit.
func (e *SettlementEngine) redeemCoupon(ctx context.Context, order model.Order) error {
	usage, err := e.repo.IncrementCouponUsage(ctx, *order.CouponCode)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			e.logger.Warnw("paid order references missing coupon", "order", order.Code, "coupon", *order.CouponCode)
			return nil
		}
		return err
	}
	if usage.Exceeded() {
		e.logger.Warnw("coupon redeemed over its usage limit, review required",
			"order", order.Code,
			"coupon", usage.Code,
			"usage", usage.UsageCount,
			"maxUsage", usage.MaxUsage,
		)
	}
	return nil
}

func (e *SettlementEngine) fulfil(ctx context.Context, order model.Order) {
	ctx, cancel := context.WithTimeout(ctx, e.fulfillmentTimeout)
	defer cancel()

	if err := e.fulfiller.Fulfil(ctx, order); err != nil {
		e.logger.Errorw("fulfillment failed, left for reconciliation", "order", order.Code, "error", err)
	}
}
