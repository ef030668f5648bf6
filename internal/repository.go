package internal

//go:generate mockgen -source=repository.go -destination=mock/mock_repository.go -package=mock_internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/model"
)

const (
	orderFields = "id, code, user_id, original_amount, discount_amount, amount, description, item_type, item_ref, " +
		"status, coupon_code, paid_amount, provider_txn_id, failure_reason, paid_at, created_at"
	joinedOrderFields = "o.id, o.code, o.user_id, o.original_amount, o.discount_amount, o.amount, o.description, o.item_type, o.item_ref, " +
		"o.status, o.coupon_code, o.paid_amount, o.provider_txn_id, o.failure_reason, o.paid_at, o.created_at"
	couponFields = "id, code, discount_type, discount_value, max_usage, usage_count, expiry_date, is_active"
	packFields   = "id, name, description, base_amount, bonus_percent, price, is_active, display_order"
)

type IRepository interface {
	WithTx(context.Context, func(context.Context) error) error

	GetCouponByCode(context.Context, string) (model.Coupon, error)
	IncrementCouponUsage(context.Context, string) (model.CouponUsage, error)

	CreateOrder(context.Context, model.Order) (model.Order, error)
	GetOrderByCode(context.Context, string) (model.Order, error)
	GetOrders(context.Context, int) ([]model.Order, error)
	MarkOrderPaid(context.Context, int64, model.Transaction, time.Time) (bool, error)
	MarkOrderFailed(context.Context, int64, string) (bool, error)

	CreateFulfillment(context.Context, int64, time.Time) error
	CompleteFulfillment(context.Context, int64, time.Time) (bool, error)
	RecordFulfillmentFailure(context.Context, int64, string) error
	GetPendingFulfillments(context.Context, int, int) ([]model.Order, error)

	GetCurrencyPackByID(context.Context, int) (model.CurrencyPack, error)
	GetCurrencyPacks(context.Context) ([]model.CurrencyPack, error)
	GrantCourse(context.Context, model.Entitlement) (bool, error)
	CreditBalance(context.Context, int, int64) (int64, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

func (r Repository) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return withTx(ctx, r.Conn, fn)
}

func (r Repository) GetCouponByCode(ctx context.Context, code string) (model.Coupon, error) {
	var c model.Coupon
	err := r.q(ctx).QueryRowContext(ctx, "SELECT "+couponFields+" FROM coupons WHERE code = $1", code).
		Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &c.MaxUsage, &c.UsageCount, &c.ExpiresAt, &c.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Coupon{}, ErrNoRecords
		}
		return model.Coupon{}, fmt.Errorf("get coupon: %w", err)
	}
	return c, nil
}

func (r Repository) IncrementCouponUsage(ctx context.Context, code string) (model.CouponUsage, error) {
	u := model.CouponUsage{Code: code}
	err := r.q(ctx).QueryRowContext(ctx, "UPDATE coupons SET usage_count = usage_count + 1 WHERE code = $1 RETURNING usage_count, max_usage", code).
		Scan(&u.UsageCount, &u.MaxUsage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CouponUsage{}, ErrNoRecords
		}
		return model.CouponUsage{}, fmt.Errorf("increment coupon usage: %w", err)
	}
	return u, nil
}

func (r Repository) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	err := r.q(ctx).QueryRowContext(ctx, "INSERT INTO orders (code, user_id, original_amount, discount_amount, amount, description, item_type, item_ref, status, coupon_code, created_at) "+
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id",
		o.Code, o.UserID, o.OriginalAmount, o.DiscountAmount, o.Amount, o.Description, o.ItemType, o.ItemRef, o.Status, nullString(o.CouponCode), o.CreatedAt).
		Scan(&o.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Order{}, ErrOrderCodeTaken
		}
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (r Repository) GetOrderByCode(ctx context.Context, code string) (model.Order, error) {
	o, err := scanOrder(r.q(ctx).QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE code = $1", code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, ErrNoRecords
		}
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r Repository) GetOrders(ctx context.Context, uid int) ([]model.Order, error) {
	rows, err := r.q(ctx).QueryContext(ctx, "SELECT "+orderFields+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", uid)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return scanOrders(rows)
}

// MarkOrderPaid moves a PENDING order to PAID. It reports false when the order
// was no longer pending.
func (r Repository) MarkOrderPaid(ctx context.Context, orderID int64, txn model.Transaction, paidAt time.Time) (bool, error) {
	res, err := r.q(ctx).ExecContext(ctx, "UPDATE orders SET status = $1, paid_amount = $2, provider_txn_id = $3, paid_at = $4 WHERE id = $5 AND status = $6",
		model.OrderStatusPaid, txn.Amount, fmt.Sprint(txn.ID), paidAt, orderID, model.OrderStatusPending)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return affectedOne(res)
}

func (r Repository) MarkOrderFailed(ctx context.Context, orderID int64, reason string) (bool, error) {
	res, err := r.q(ctx).ExecContext(ctx, "UPDATE orders SET status = $1, failure_reason = $2 WHERE id = $3 AND status = $4",
		model.OrderStatusFailed, reason, orderID, model.OrderStatusPending)
	if err != nil {
		return false, fmt.Errorf("mark order failed: %w", err)
	}
	return affectedOne(res)
}

func (r Repository) CreateFulfillment(ctx context.Context, orderID int64, createdAt time.Time) error {
	_, err := r.q(ctx).ExecContext(ctx, "INSERT INTO fulfillments (order_id, status, created_at) VALUES ($1, $2, $3) ON CONFLICT (order_id) DO NOTHING",
		orderID, model.FulfillmentStatusPending, createdAt)
	if err != nil {
		return fmt.Errorf("create fulfillment: %w", err)
	}
	return nil
}

// CompleteFulfillment claims a pending fulfillment. Only one caller ever gets true.
func (r Repository) CompleteFulfillment(ctx context.Context, orderID int64, completedAt time.Time) (bool, error) {
	res, err := r.q(ctx).ExecContext(ctx, "UPDATE fulfillments SET status = $1, completed_at = $2, attempts = attempts + 1 WHERE order_id = $3 AND status = $4",
		model.FulfillmentStatusDone, completedAt, orderID, model.FulfillmentStatusPending)
	if err != nil {
		return false, fmt.Errorf("complete fulfillment: %w", err)
	}
	return affectedOne(res)
}

func (r Repository) RecordFulfillmentFailure(ctx context.Context, orderID int64, reason string) error {
	_, err := r.q(ctx).ExecContext(ctx, "UPDATE fulfillments SET attempts = attempts + 1, last_error = $1 WHERE order_id = $2 AND status = $3",
		reason, orderID, model.FulfillmentStatusPending)
	if err != nil {
		return fmt.Errorf("record fulfillment failure: %w", err)
	}
	return nil
}

func (r Repository) GetPendingFulfillments(ctx context.Context, limit, maxAttempts int) ([]model.Order, error) {
	rows, err := r.q(ctx).QueryContext(ctx, "SELECT "+joinedOrderFields+" FROM fulfillments f JOIN orders o ON o.id = f.order_id "+
		"WHERE f.status = $1 AND f.attempts < $2 ORDER BY f.created_at LIMIT $3",
		model.FulfillmentStatusPending, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending fulfillments: %w", err)
	}
	return scanOrders(rows)
}

func (r Repository) GetCurrencyPackByID(ctx context.Context, id int) (model.CurrencyPack, error) {
	p, err := scanPack(r.q(ctx).QueryRowContext(ctx, "SELECT "+packFields+" FROM currency_packs WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CurrencyPack{}, ErrNoRecords
		}
		return model.CurrencyPack{}, fmt.Errorf("get currency pack: %w", err)
	}
	return p, nil
}

func (r Repository) GetCurrencyPacks(ctx context.Context) ([]model.CurrencyPack, error) {
	rows, err := r.q(ctx).QueryContext(ctx, "SELECT "+packFields+" FROM currency_packs WHERE is_active ORDER BY display_order, id")
	if err != nil {
		return nil, fmt.Errorf("get currency packs: %w", err)
	}
	defer rows.Close()

	var packs []model.CurrencyPack
	for rows.Next() {
		p, err := scanPack(rows)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, rows.Err()
}

// GrantCourse reports false when the user already had access to the course.
func (r Repository) GrantCourse(ctx context.Context, e model.Entitlement) (bool, error) {
	res, err := r.q(ctx).ExecContext(ctx, "INSERT INTO user_courses (user_id, course_id, order_id, purchased_at, access_expires_at, is_active) "+
		"VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (user_id, course_id) DO NOTHING",
		e.UserID, e.CourseID, e.OrderID, e.PurchasedAt, nullTime(e.ExpiresAt), true)
	if err != nil {
		return false, fmt.Errorf("grant course: %w", err)
	}
	return affectedOne(res)
}

func (r Repository) CreditBalance(ctx context.Context, uid int, amount int64) (int64, error) {
	var balance int64
	err := r.q(ctx).QueryRowContext(ctx, "UPDATE users SET currency_balance = currency_balance + $1 WHERE id = $2 RETURNING currency_balance", amount, uid).
		Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNoRecords
		}
		return 0, fmt.Errorf("credit balance: %w", err)
	}
	return balance, nil
}

func (r Repository) q(ctx context.Context) querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return r.Conn
}

func scanOrder(s scanner) (model.Order, error) {
	var (
		o          model.Order
		coupon     sql.NullString
		paidAmount decimal.NullDecimal
		txnID      sql.NullString
		reason     sql.NullString
		paidAt     sql.NullTime
	)
	err := s.Scan(&o.ID, &o.Code, &o.UserID, &o.OriginalAmount, &o.DiscountAmount, &o.Amount, &o.Description, &o.ItemType, &o.ItemRef,
		&o.Status, &coupon, &paidAmount, &txnID, &reason, &paidAt, &o.CreatedAt)
	if err != nil {
		return model.Order{}, err
	}

	if coupon.Valid {
		o.CouponCode = &coupon.String
	}
	if paidAmount.Valid {
		o.PaidAmount = paidAmount.Decimal
	}
	if paidAt.Valid {
		o.PaidAt = &paidAt.Time
	}
	o.ProviderTxnID = txnID.String
	o.FailureReason = reason.String
	return o, nil
}

func scanOrders(rows *sql.Rows) ([]model.Order, error) {
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanPack(s scanner) (model.CurrencyPack, error) {
	var (
		p    model.CurrencyPack
		desc sql.NullString
	)
	err := s.Scan(&p.ID, &p.Name, &desc, &p.BaseAmount, &p.BonusPercent, &p.Price, &p.Active, &p.DisplayOrder)
	p.Description = desc.String
	return p, err
}

func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
