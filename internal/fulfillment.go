package internal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/clock"
	"github.com/DrGermanius/paysettle/internal/model"
)

const recordFailureTimeout = 2 * time.Second

// Fulfiller delivers what a paid order bought. Each order is delivered at most
// once: the pending fulfillment row is claimed in the same transaction as the grant.
type Fulfiller struct {
	repo   IRepository
	clock  clock.Clock
	logger *zap.SugaredLogger
}

func NewFulfiller(repo IRepository, clk clock.Clock, logger *zap.SugaredLogger) *Fulfiller {
	return &Fulfiller{repo: repo, clock: clk, logger: logger}
}

func (f Fulfiller) Fulfil(ctx context.Context, order model.Order) error {
	err := f.repo.WithTx(ctx, func(ctx context.Context) error {
		claimed, err := f.repo.CompleteFulfillment(ctx, order.ID, f.clock.Now())
		if err != nil {
			return err
		}
		if !claimed {
			f.logger.Debugw("order already fulfilled", "order", order.Code)
			return nil
		}
		return f.deliver(ctx, order)
	})
	if err != nil {
		rctx, cancel := context.WithTimeout(context.Background(), recordFailureTimeout)
		defer cancel()
		if rerr := f.repo.RecordFulfillmentFailure(rctx, order.ID, err.Error()); rerr != nil {
			f.logger.Errorw("record fulfillment failure", "order", order.Code, "error", rerr)
		}
		return fmt.Errorf("fulfil order %s: %w", order.Code, err)
	}
	return nil
}

func (f Fulfiller) deliver(ctx context.Context, order model.Order) error {
	switch order.ItemType {
	case model.ItemTypeCourse:
		return f.grantCourse(ctx, order)
	case model.ItemTypeCurrencyPack:
		return f.creditCurrency(ctx, order)
	default:
		f.logger.Warnw("paid order has unknown item type, nothing delivered",
			"order", order.Code,
			"itemType", order.ItemType,
			"itemRef", order.ItemRef,
		)
		return nil
	}
}

func (f Fulfiller) grantCourse(ctx context.Context, order model.Order) error {
	courseID, err := strconv.Atoi(order.ItemRef)
	if err != nil {
		return fmt.Errorf("invalid course reference %q: %w", order.ItemRef, err)
	}

	created, err := f.repo.GrantCourse(ctx, model.Entitlement{
		UserID:      order.UserID,
		CourseID:    courseID,
		OrderID:     order.ID,
		PurchasedAt: f.clock.Now(),
		Active:      true,
	})
	if err != nil {
		return err
	}

	if !created {
		f.logger.Infow("user already entitled to course", "order", order.Code, "user", order.UserID, "course", courseID)
		return nil
	}
	f.logger.Infow("course granted", "order", order.Code, "user", order.UserID, "course", courseID)
	return nil
}

func (f Fulfiller) creditCurrency(ctx context.Context, order model.Order) error {
	packID, err := strconv.Atoi(order.ItemRef)
	if err != nil {
		return fmt.Errorf("invalid currency pack reference %q: %w", order.ItemRef, err)
	}

	// Inactive packs are still honoured, the order was priced while it was on sale.
	pack, err := f.repo.GetCurrencyPackByID(ctx, packID)
	if err != nil {
		return fmt.Errorf("currency pack %d: %w", packID, err)
	}

	total := pack.TotalCurrency()
	balance, err := f.repo.CreditBalance(ctx, order.UserID, total)
	if err != nil {
		return err
	}

	f.logger.Infow("currency credited",
		"order", order.Code,
		"user", order.UserID,
		"credited", total,
		"bonus", pack.Bonus(),
		"balance", balance,
	)
	return nil
}

// Reconciler re-drives fulfillments that were left pending by a failure or crash.
type Reconciler struct {
	repo        IRepository
	fulfiller   IFulfiller
	batch       int
	maxAttempts int
	logger      *zap.SugaredLogger
}

func NewReconciler(repo IRepository, fulfiller IFulfiller, batch, maxAttempts int, logger *zap.SugaredLogger) *Reconciler {
	return &Reconciler{repo: repo, fulfiller: fulfiller, batch: batch, maxAttempts: maxAttempts, logger: logger}
}

// Reconcile runs one pass and returns how many orders were delivered.
func (r Reconciler) Reconcile(ctx context.Context) (int, error) {
	orders, err := r.repo.GetPendingFulfillments(ctx, r.batch, r.maxAttempts)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, o := range orders {
		if err = r.fulfiller.Fulfil(ctx, o); err != nil {
			r.logger.Errorw("reconcile fulfillment", "order", o.Code, "error", err)
			continue
		}
		delivered++
	}

	if len(orders) > 0 {
		r.logger.Infow("fulfillment reconciliation pass", "pending", len(orders), "delivered", delivered)
	}
	return delivered, nil
}

func (r Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Reconcile(ctx); err != nil {
				r.logger.Errorw("fulfillment reconciliation", "error", err)
			}
		}
	}
}
