package test_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/paysettle/internal"
	"github.com/DrGermanius/paysettle/internal/clock"
	mock_internal "github.com/DrGermanius/paysettle/internal/mock"
	"github.com/DrGermanius/paysettle/internal/model"
)

func transferBody(id int64, content string, amount int64) []byte {
	return []byte(fmt.Sprintf(`{"id":%d,"gateway":"MBBank","transactionDate":"2024-03-01 10:00:00",`+
		`"accountNumber":"0123456789","code":null,"content":%q,"transferType":"in",`+
		`"transferAmount":%d,"referenceCode":"FT1","description":""}`, id, content, amount))
}

var _ = Describe("Webhook", func() {
	var (
		ctrl    *gomock.Controller
		settler *mock_internal.MockISettler
		hook    *internal.Webhook
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		settler = mock_internal.NewMockISettler(ctrl)
		hook = internal.NewWebhook("secret", "apikey", internal.NewOrderCodes("DH"), settler, newLogger())
	})
	AfterEach(func() {
		ctrl.Finish()
	})
	Context("Authenticate", func() {
		DescribeTable("accepted headers",
			func(header string) {
				Expect(hook.Authenticate(header)).Should(Succeed())
			},
			Entry("bearer", "Bearer secret"),
			Entry("lowercase bearer", "bearer secret"),
			Entry("api key scheme", "Apikey apikey"),
			Entry("bare token", "secret"),
		)
		DescribeTable("rejected headers",
			func(header string) {
				Expect(hook.Authenticate(header)).Should(Equal(internal.ErrUnauthorized))
			},
			Entry("empty", ""),
			Entry("scheme only", "Bearer "),
			Entry("wrong token", "Bearer nope"),
			Entry("prefix of secret", "secre"),
		)
		It("rejects everything when no secret is configured", func() {
			h := internal.NewWebhook("", "", internal.NewOrderCodes("DH"), settler, newLogger())
			Expect(h.Authenticate("")).Should(Equal(internal.ErrUnauthorized))
			Expect(h.Authenticate("Bearer ")).Should(Equal(internal.ErrUnauthorized))
		})
	})
	Context("Ingest", func() {
		It("stops unauthenticated callbacks", func() {
			res := hook.Ingest(context.Background(), "Bearer nope", transferBody(1, "DH12345", 1000))
			Expect(res.Success).Should(BeFalse())
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeUnauthorized))
		})
		It("rejects malformed payloads", func() {
			res := hook.Ingest(context.Background(), "secret", []byte(`{"id":`))
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeInvalidPayload))
		})
		It("rejects payloads without a transaction id", func() {
			res := hook.Ingest(context.Background(), "secret", transferBody(0, "DH12345", 1000))
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeInvalidPayload))
		})
		It("ignores outgoing transfers", func() {
			body := []byte(`{"id":5,"content":"DH12345","transferType":"out","transferAmount":1000}`)

			res := hook.Ingest(context.Background(), "secret", body)
			Expect(res.Success).Should(BeTrue())
		})
		It("reports memos without an order code", func() {
			res := hook.Ingest(context.Background(), "secret", transferBody(2, "thanh toan hoc phi", 1000))
			Expect(res.Success).Should(BeFalse())
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeOrderIDNotFound))
		})
		It("extracts the order code from a free text memo", func() {
			settler.EXPECT().Settle(gomock.Any(), "DH12345", gomock.Any()).
				Return(model.SettlementResult{Outcome: model.OutcomeProcessed, OrderCode: "DH12345"}, nil)

			res := hook.Ingest(context.Background(), "Bearer secret", transferBody(3, "DH12345 thanh toan", 100000))
			Expect(res.Success).Should(BeTrue())
			Expect(res.Message).Should(Equal("processed successfully"))
			Expect(res.OrderID).Should(Equal("DH12345"))
		})
		It("prefers the provider detected code", func() {
			body := []byte(`{"id":4,"code":"DH777777","content":"DH12345","transferType":"in","transferAmount":1000}`)
			settler.EXPECT().Settle(gomock.Any(), "DH777777", gomock.Any()).
				Return(model.SettlementResult{Outcome: model.OutcomeAlreadyProcessed, OrderCode: "DH777777"}, nil)

			res := hook.Ingest(context.Background(), "secret", body)
			Expect(res.Success).Should(BeTrue())
			Expect(res.Message).Should(Equal("already processed"))
		})
		It("reports processing errors", func() {
			settler.EXPECT().Settle(gomock.Any(), "DH12345", gomock.Any()).Return(model.SettlementResult{}, errors.New("some error"))

			res := hook.Ingest(context.Background(), "secret", transferBody(6, "DH12345", 1000))
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeProcessingError))
			Expect(res.Message).ShouldNot(ContainSubstring("some error"))
		})
		It("describes amount mismatches", func() {
			settler.EXPECT().Settle(gomock.Any(), "DH12345", gomock.Any()).Return(model.SettlementResult{
				Outcome:   model.OutcomeAmountMismatch,
				OrderCode: "DH12345",
				Expected:  decimal.NewFromInt(100000),
				Received:  decimal.NewFromInt(50000),
			}, nil)

			res := hook.Ingest(context.Background(), "secret", transferBody(7, "DH12345", 50000))
			Expect(res.ErrorCode).Should(Equal(model.ErrorCodeAmountMismatch))
			Expect(res.Message).Should(Equal("amount mismatch: expected 100000, received 50000"))
		})
	})
})

var _ = Describe("Webhook settlement", func() {
	var (
		store    *memoryStore
		notifier *recordingNotifier
		hook     *internal.Webhook
		order    model.Order
	)
	BeforeEach(func() {
		logger := newLogger()
		clk := clock.NewManual(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

		store = newMemoryStore()
		notifier = &recordingNotifier{}
		engine := internal.NewSettlementEngine(store, internal.NewFulfiller(store, clk, logger), notifier,
			decimal.NewFromInt(1000), time.Second, clk, logger)
		hook = internal.NewWebhook("secret", "", internal.NewOrderCodes("DH"), engine, logger)

		order = store.addOrder(model.Order{
			Code:     "DH12345",
			UserID:   7,
			Amount:   decimal.NewFromInt(100000),
			ItemType: model.ItemTypeCourse,
			ItemRef:  "3",
		})
	})
	DescribeTable("tolerance boundaries",
		func(amount int64, status, errorCode string) {
			res := hook.Ingest(context.Background(), "secret", transferBody(10, "DH12345 thanh toan", amount))
			Expect(res.ErrorCode).Should(Equal(errorCode))
			Expect(store.order(order.Code).Status).Should(Equal(status))
		},
		Entry("exact amount", int64(100000), model.OrderStatusPaid, ""),
		Entry("lowest accepted amount", int64(99000), model.OrderStatusPaid, ""),
		Entry("just below tolerance", int64(98999), model.OrderStatusFailed, model.ErrorCodeAmountMismatch),
		Entry("overpaid within tolerance", int64(101000), model.OrderStatusPaid, ""),
	)
	It("grants the course once across redeliveries", func() {
		for i := 0; i < 3; i++ {
			res := hook.Ingest(context.Background(), "secret", transferBody(11, "DH12345", 100000))
			Expect(res.Success).Should(BeTrue())
		}

		Expect(store.courseCount(7)).Should(Equal(1))
		Expect(notifier.count()).Should(Equal(1))
	})
	It("answers already processed on redelivery", func() {
		hook.Ingest(context.Background(), "secret", transferBody(12, "DH12345", 100000))

		res := hook.Ingest(context.Background(), "secret", transferBody(12, "DH12345", 100000))
		Expect(res.Success).Should(BeTrue())
		Expect(res.Message).Should(Equal("already processed"))
	})
	It("keeps a failed order failed", func() {
		hook.Ingest(context.Background(), "secret", transferBody(13, "DH12345", 1000))

		res := hook.Ingest(context.Background(), "secret", transferBody(14, "DH12345", 100000))
		Expect(res.ErrorCode).Should(Equal(model.ErrorCodeOrderNotPending))
		Expect(store.order(order.Code).Status).Should(Equal(model.OrderStatusFailed))
	})
	It("leaves orders untouched when no code is found", func() {
		res := hook.Ingest(context.Background(), "secret", transferBody(15, "chuyen tien", 100000))
		Expect(res.ErrorCode).Should(Equal(model.ErrorCodeOrderIDNotFound))
		Expect(store.order(order.Code).Status).Should(Equal(model.OrderStatusPending))
	})
	It("reports unknown orders", func() {
		res := hook.Ingest(context.Background(), "secret", transferBody(16, "DH999999", 100000))
		Expect(res.ErrorCode).Should(Equal(model.ErrorCodeOrderNotFound))
	})
})

var _ = Describe("Currency pack purchase", func() {
	var (
		store *memoryStore
		srv   *internal.Service
		hook  *internal.Webhook
	)
	BeforeEach(func() {
		logger := newLogger()
		clk := clock.NewManual(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
		codes := internal.NewOrderCodes("DH")

		store = newMemoryStore()
		store.packs[3] = model.CurrencyPack{
			ID:           3,
			Name:         "Gem Pack",
			BaseAmount:   100000,
			BonusPercent: decimal.NewFromInt(10),
			Price:        decimal.NewFromInt(500000),
			Active:       true,
		}
		engine := internal.NewSettlementEngine(store, internal.NewFulfiller(store, clk, logger), &recordingNotifier{},
			decimal.Zero, time.Second, clk, logger)
		srv = internal.NewService(store, codes, internal.PaymentInstructions{}, clk, logger)
		hook = internal.NewWebhook("secret", "", codes, engine, logger)
	})
	It("does not sell a pack at a client-chosen price", func() {
		_, err := srv.CreateOrder(context.Background(), 7, model.OrderInput{
			Amount:   decimal.NewFromInt(1),
			ItemType: model.ItemTypeCurrencyPack,
			ItemRef:  "3",
		})
		Expect(err).Should(Equal(internal.ErrInvalidItemType))
		Expect(store.orders).Should(BeEmpty())
		Expect(store.balance(7)).Should(Equal(int64(0)))
	})
	It("credits the pack once paid at its price", func() {
		out, err := srv.CreateCurrencyPackOrder(context.Background(), 7, model.CurrencyPackOrderInput{PackID: 3})
		Expect(err).ShouldNot(HaveOccurred())

		res := hook.Ingest(context.Background(), "secret", transferBody(20, out.Code, 500000))
		Expect(res.Success).Should(BeTrue())
		Expect(store.balance(7)).Should(Equal(int64(110000)))
	})
})
