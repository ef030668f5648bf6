package test_test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/paysettle/internal"
	"github.com/DrGermanius/paysettle/internal/model"
)

var orderColumns = []string{
	"id", "code", "user_id", "original_amount", "discount_amount", "amount", "description", "item_type", "item_ref",
	"status", "coupon_code", "paid_amount", "provider_txn_id", "failure_reason", "paid_at", "created_at",
}

var _ = Describe("Repository", func() {
	var (
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		repo = internal.Repository{
			Conn:   db,
			Logger: newLogger(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("Orders", func() {
		It("GetOrderByCode without error", func() {
			t := time.Now()
			code := "DH1234567897"

			rows := sqlmock.NewRows(orderColumns).
				AddRow(int64(1), code, 7, "100000", "10000", "90000", "Payment for course", "course", "3",
					"PENDING", "SAVE10", nil, nil, nil, nil, t)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE code = \\$1").
				WithArgs(code).WillReturnRows(rows)

			o, err := repo.GetOrderByCode(context.Background(), code)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.ID).Should(Equal(int64(1)))
			Expect(o.Amount.Equal(decimal.NewFromInt(90000))).Should(BeTrue())
			Expect(*o.CouponCode).Should(Equal("SAVE10"))
			Expect(o.PaidAt).Should(BeNil())
		})
		It("GetOrderByCode with error no records", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE code = \\$1").
				WithArgs("DH1").WillReturnRows(sqlmock.NewRows(orderColumns))

			_, err := repo.GetOrderByCode(context.Background(), "DH1")
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("GetOrders without error", func() {
			t := time.Now()
			uid := 7

			rows := sqlmock.NewRows(orderColumns).
				AddRow(int64(2), "DH2", uid, "500", "0", "500", "", "", "", "PAID", nil, "500", "901", nil, t, t).
				AddRow(int64(1), "DH1", uid, "100", "0", "100", "", "", "", "FAILED", nil, nil, nil, "underpaid", nil, t)

			mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
				WithArgs(uid).WillReturnRows(rows).RowsWillBeClosed()

			orders, err := repo.GetOrders(context.Background(), uid)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(2))
			Expect(orders[0].ProviderTxnID).Should(Equal("901"))
			Expect(orders[0].PaidAt).ShouldNot(BeNil())
			Expect(orders[1].FailureReason).Should(Equal("underpaid"))
		})
		It("GetOrders with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id = \\$1 ORDER BY created_at DESC").
				WithArgs(7).WillReturnError(errors.New("some error"))

			_, err := repo.GetOrders(context.Background(), 7)
			Expect(err).Should(HaveOccurred())
		})
		It("CreateOrder without error", func() {
			t := time.Now()
			o := model.Order{
				Code:           "DH1234567897",
				UserID:         7,
				OriginalAmount: decimal.NewFromInt(1000),
				DiscountAmount: decimal.Zero,
				Amount:         decimal.NewFromInt(1000),
				Status:         model.OrderStatusPending,
				CreatedAt:      t,
			}

			mock.ExpectQuery("INSERT INTO orders (.+) RETURNING id").
				WithArgs(o.Code, o.UserID, o.OriginalAmount, o.DiscountAmount, o.Amount, "", "", "", o.Status, nil, t).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

			created, err := repo.CreateOrder(context.Background(), o)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(created.ID).Should(Equal(int64(5)))
		})
		It("CreateOrder with error code taken", func() {
			mock.ExpectQuery("INSERT INTO orders (.+) RETURNING id").
				WillReturnError(&pgconn.PgError{Code: "23505"})

			_, err := repo.CreateOrder(context.Background(), model.Order{Code: "DH1"})
			Expect(err).Should(Equal(internal.ErrOrderCodeTaken))
		})
		It("MarkOrderPaid moves a pending order", func() {
			t := time.Now()
			txn := model.Transaction{ID: 901, Amount: decimal.NewFromInt(1000)}

			mock.ExpectExec("UPDATE orders SET status = \\$1, paid_amount = \\$2, provider_txn_id = \\$3, paid_at = \\$4 WHERE id = \\$5 AND status = \\$6").
				WithArgs(model.OrderStatusPaid, txn.Amount, "901", t, int64(1), model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))

			ok, err := repo.MarkOrderPaid(context.Background(), 1, txn, t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).Should(BeTrue())
		})
		It("MarkOrderPaid reports an order that is not pending", func() {
			mock.ExpectExec("UPDATE orders SET status = (.+) WHERE id = \\$5 AND status = \\$6").
				WillReturnResult(sqlmock.NewResult(0, 0))

			ok, err := repo.MarkOrderPaid(context.Background(), 1, model.Transaction{ID: 1}, time.Now())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).Should(BeFalse())
		})
		It("MarkOrderFailed stores the reason", func() {
			mock.ExpectExec("UPDATE orders SET status = \\$1, failure_reason = \\$2 WHERE id = \\$3 AND status = \\$4").
				WithArgs(model.OrderStatusFailed, "underpaid", int64(1), model.OrderStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))

			ok, err := repo.MarkOrderFailed(context.Background(), 1, "underpaid")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).Should(BeTrue())
		})
	})
	Context("Coupons", func() {
		It("GetCouponByCode without error", func() {
			t := time.Now()
			rows := sqlmock.NewRows([]string{"id", "code", "discount_type", "discount_value", "max_usage", "usage_count", "expiry_date", "is_active"}).
				AddRow(1, "SAVE10", model.DiscountPercent, "10", 5, 1, t, true)

			mock.ExpectQuery("SELECT (.+) FROM coupons WHERE code = \\$1").
				WithArgs("SAVE10").WillReturnRows(rows)

			c, err := repo.GetCouponByCode(context.Background(), "SAVE10")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(c.Kind).Should(Equal(model.DiscountPercent))
			Expect(c.UsageCount).Should(Equal(1))
		})
		It("IncrementCouponUsage returns the new counter", func() {
			mock.ExpectQuery("UPDATE coupons SET usage_count = usage_count \\+ 1 WHERE code = \\$1 RETURNING usage_count, max_usage").
				WithArgs("SAVE10").
				WillReturnRows(sqlmock.NewRows([]string{"usage_count", "max_usage"}).AddRow(6, 5))

			u, err := repo.IncrementCouponUsage(context.Background(), "SAVE10")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(u.Exceeded()).Should(BeTrue())
		})
	})
	Context("Fulfillment", func() {
		It("CompleteFulfillment claims the row once", func() {
			t := time.Now()

			mock.ExpectExec("UPDATE fulfillments SET status = \\$1, completed_at = \\$2, attempts = attempts \\+ 1 WHERE order_id = \\$3 AND status = \\$4").
				WithArgs(model.FulfillmentStatusDone, t, int64(1), model.FulfillmentStatusPending).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec("UPDATE fulfillments SET status = (.+)").
				WillReturnResult(sqlmock.NewResult(0, 0))

			ok, err := repo.CompleteFulfillment(context.Background(), 1, t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).Should(BeTrue())

			ok, err = repo.CompleteFulfillment(context.Background(), 1, t)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).Should(BeFalse())
		})
		It("GetPendingFulfillments joins the orders", func() {
			t := time.Now()
			rows := sqlmock.NewRows(orderColumns).
				AddRow(int64(1), "DH1", 7, "100", "0", "100", "", "course", "3", "PAID", nil, "100", "9", nil, t, t)

			mock.ExpectQuery("SELECT (.+) FROM fulfillments f JOIN orders o ON o.id = f.order_id WHERE f.status = \\$1 AND f.attempts < \\$2").
				WithArgs(model.FulfillmentStatusPending, 10, 50).WillReturnRows(rows)

			orders, err := repo.GetPendingFulfillments(context.Background(), 50, 10)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).Should(HaveLen(1))
		})
		It("GrantCourse reports an existing entitlement", func() {
			mock.ExpectExec("INSERT INTO user_courses (.+) ON CONFLICT \\(user_id, course_id\\) DO NOTHING").
				WillReturnResult(sqlmock.NewResult(0, 0))

			created, err := repo.GrantCourse(context.Background(), model.Entitlement{UserID: 7, CourseID: 3, OrderID: 1, PurchasedAt: time.Now()})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(created).Should(BeFalse())
		})
		It("CreditBalance returns the new balance", func() {
			mock.ExpectQuery("UPDATE users SET currency_balance = currency_balance \\+ \\$1 WHERE id = \\$2 RETURNING currency_balance").
				WithArgs(int64(1100), 7).
				WillReturnRows(sqlmock.NewRows([]string{"currency_balance"}).AddRow(int64(1600)))

			balance, err := repo.CreditBalance(context.Background(), 7, 1100)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(balance).Should(Equal(int64(1600)))
		})
	})
	Context("Currency packs", func() {
		It("GetCurrencyPacks without error", func() {
			rows := sqlmock.NewRows([]string{"id", "name", "description", "base_amount", "bonus_percent", "price", "is_active", "display_order"}).
				AddRow(1, "Small", nil, int64(1000), "10", "50000", true, 1).
				AddRow(2, "Large", "best value", int64(5000), "20", "200000", true, 2)

			mock.ExpectQuery("SELECT (.+) FROM currency_packs WHERE is_active ORDER BY display_order, id").
				WillReturnRows(rows).RowsWillBeClosed()

			packs, err := repo.GetCurrencyPacks(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(packs).Should(HaveLen(2))
			Expect(packs[1].TotalCurrency()).Should(Equal(int64(6000)))
		})
		It("GetCurrencyPackByID with error no records", func() {
			mock.ExpectQuery("SELECT (.+) FROM currency_packs WHERE id = \\$1").
				WithArgs(9).WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, err := repo.GetCurrencyPackByID(context.Background(), 9)
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
	})
	Context("Transactions", func() {
		It("commits when the function succeeds", func() {
			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO fulfillments").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.WithTx(context.Background(), func(ctx context.Context) error {
				return repo.CreateFulfillment(ctx, 1, time.Now())
			})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("rolls back when the function fails", func() {
			e := errors.New("some error")

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO fulfillments").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectRollback()

			err := repo.WithTx(context.Background(), func(ctx context.Context) error {
				if err := repo.CreateFulfillment(ctx, 1, time.Now()); err != nil {
					return err
				}
				return e
			})
			Expect(err).Should(Equal(e))
		})
		It("joins an outer transaction", func() {
			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO fulfillments").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.WithTx(context.Background(), func(ctx context.Context) error {
				return repo.WithTx(ctx, func(ctx context.Context) error {
					return repo.CreateFulfillment(ctx, 1, time.Now())
				})
			})
			Expect(err).ShouldNot(HaveOccurred())
		})
	})
})
