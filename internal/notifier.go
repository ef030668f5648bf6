package internal

//go:generate mockgen -source=notifier.go -destination=mock/mock_notifier.go -package=mock_internal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/model"
)

const queuePerWorker = 64

type ISender interface {
	Send(context.Context, model.Notification) error
}

// Dispatcher delivers notifications on background workers with bounded retries.
// Notify never blocks the caller; a full queue drops the notification.
type Dispatcher struct {
	sender      ISender
	jobs        chan model.Notification
	workers     int
	maxAttempts int
	backoff     time.Duration
	logger      *zap.SugaredLogger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(sender ISender, workers, maxAttempts int, backoff time.Duration, logger *zap.SugaredLogger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Dispatcher{
		sender:      sender,
		jobs:        make(chan model.Notification, workers*queuePerWorker),
		workers:     workers,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		logger:      logger,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for n := range d.jobs {
				d.deliver(ctx, n)
			}
		}()
	}
}

func (d *Dispatcher) Notify(_ context.Context, n model.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warnw("dispatcher stopped, notification dropped", "order", n.OrderCode)
		return
	}

	select {
	case d.jobs <- n:
	default:
		d.logger.Warnw("notification queue full, notification dropped", "order", n.OrderCode)
	}
}

// Stop stops accepting notifications and waits for queued ones to be handled.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, n model.Notification) {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.sender.Send(ctx, n)
		if err == nil {
			return
		}

		d.logger.Warnw("notification delivery failed", "order", n.OrderCode, "attempt", attempt, "error", err)
		if attempt == d.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			d.logger.Errorw("notification abandoned on shutdown", "order", n.OrderCode)
			return
		case <-time.After(d.backoff * time.Duration(attempt)):
		}
	}
	d.logger.Errorw("notification dropped after retries", "order", n.OrderCode, "attempts", d.maxAttempts)
}

// LogSender writes notifications to the log when no broker is configured.
type LogSender struct {
	logger *zap.SugaredLogger
}

func NewLogSender(logger *zap.SugaredLogger) *LogSender {
	return &LogSender{logger: logger}
}

func (s LogSender) Send(_ context.Context, n model.Notification) error {
	s.logger.Infow("payment confirmation",
		"id", n.ID,
		"order", n.OrderCode,
		"user", n.UserID,
		"amount", n.Amount.String(),
		"description", n.Description,
		"paidAt", n.PaidAt,
	)
	return nil
}
