package test_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/paysettle/internal"
	"github.com/DrGermanius/paysettle/internal/clock"
	mock_internal "github.com/DrGermanius/paysettle/internal/mock"
	"github.com/DrGermanius/paysettle/internal/model"
)

var _ = Describe("Fulfiller", func() {
	var (
		ctrl      *gomock.Controller
		rep       *mock_internal.MockIRepository
		fulfiller *internal.Fulfiller
		now       time.Time
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		rep = mock_internal.NewMockIRepository(ctrl)
		now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		fulfiller = internal.NewFulfiller(rep, clock.NewManual(now), newLogger())

		rep.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	})
	AfterEach(func() {
		ctrl.Finish()
	})
	It("grants a course", func() {
		order := model.Order{ID: 1, Code: "DH1", UserID: 7, ItemType: model.ItemTypeCourse, ItemRef: "3"}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)
		rep.EXPECT().GrantCourse(gomock.Any(), model.Entitlement{
			UserID:      7,
			CourseID:    3,
			OrderID:     1,
			PurchasedAt: now,
			Active:      true,
		}).Return(true, nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).Should(Succeed())
	})
	It("does not fail on an existing entitlement", func() {
		order := model.Order{ID: 1, Code: "DH1", UserID: 7, ItemType: model.ItemTypeCourse, ItemRef: "3"}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)
		rep.EXPECT().GrantCourse(gomock.Any(), gomock.Any()).Return(false, nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).Should(Succeed())
	})
	It("credits currency with the pack bonus", func() {
		order := model.Order{ID: 2, Code: "DH2", UserID: 7, ItemType: model.ItemTypeCurrencyPack, ItemRef: "5"}
		pack := model.CurrencyPack{ID: 5, BaseAmount: 1000, BonusPercent: decimal.NewFromInt(10)}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)
		rep.EXPECT().GetCurrencyPackByID(gomock.Any(), 5).Return(pack, nil)
		rep.EXPECT().CreditBalance(gomock.Any(), 7, int64(1100)).Return(int64(1100), nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).Should(Succeed())
	})
	It("skips orders that were already fulfilled", func() {
		order := model.Order{ID: 3, Code: "DH3", UserID: 7, ItemType: model.ItemTypeCurrencyPack, ItemRef: "5"}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(false, nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).Should(Succeed())
	})
	It("delivers nothing for unknown item types", func() {
		order := model.Order{ID: 4, Code: "DH4", UserID: 7, ItemType: "subscription", ItemRef: "1"}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).Should(Succeed())
	})
	It("records the failure and reports it", func() {
		order := model.Order{ID: 5, Code: "DH5", UserID: 7, ItemType: model.ItemTypeCurrencyPack, ItemRef: "5"}
		e := errors.New("some error")

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)
		rep.EXPECT().GetCurrencyPackByID(gomock.Any(), 5).Return(model.CurrencyPack{ID: 5, BaseAmount: 10}, nil)
		rep.EXPECT().CreditBalance(gomock.Any(), 7, int64(10)).Return(int64(0), e)
		rep.EXPECT().RecordFulfillmentFailure(gomock.Any(), order.ID, gomock.Any()).Return(nil)

		err := fulfiller.Fulfil(context.Background(), order)
		Expect(errors.Is(err, e)).Should(BeTrue())
	})
	It("rejects a malformed course reference", func() {
		order := model.Order{ID: 6, Code: "DH6", UserID: 7, ItemType: model.ItemTypeCourse, ItemRef: "abc"}

		rep.EXPECT().CompleteFulfillment(gomock.Any(), order.ID, now).Return(true, nil)
		rep.EXPECT().RecordFulfillmentFailure(gomock.Any(), order.ID, gomock.Any()).Return(nil)

		Expect(fulfiller.Fulfil(context.Background(), order)).ShouldNot(Succeed())
	})
})

var _ = Describe("Reconciler", func() {
	var (
		ctrl      *gomock.Controller
		rep       *mock_internal.MockIRepository
		fulfiller *mock_internal.MockIFulfiller
		rec       *internal.Reconciler
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		rep = mock_internal.NewMockIRepository(ctrl)
		fulfiller = mock_internal.NewMockIFulfiller(ctrl)
		rec = internal.NewReconciler(rep, fulfiller, 50, 10, newLogger())
	})
	AfterEach(func() {
		ctrl.Finish()
	})
	It("keeps going past a failed order", func() {
		ctx := context.Background()
		orders := []model.Order{{ID: 1, Code: "DH1"}, {ID: 2, Code: "DH2"}, {ID: 3, Code: "DH3"}}

		rep.EXPECT().GetPendingFulfillments(ctx, 50, 10).Return(orders, nil)
		fulfiller.EXPECT().Fulfil(ctx, orders[0]).Return(nil)
		fulfiller.EXPECT().Fulfil(ctx, orders[1]).Return(errors.New("some error"))
		fulfiller.EXPECT().Fulfil(ctx, orders[2]).Return(nil)

		delivered, err := rec.Reconcile(ctx)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(delivered).Should(Equal(2))
	})
	It("returns storage errors", func() {
		ctx := context.Background()
		e := errors.New("some error")

		rep.EXPECT().GetPendingFulfillments(ctx, 50, 10).Return(nil, e)

		_, err := rec.Reconcile(ctx)
		Expect(err).Should(Equal(e))
	})
	It("re-drives a fulfillment left pending", func() {
		store := newMemoryStore()
		logger := newLogger()
		clk := clock.NewManual(time.Now())
		order := store.addOrder(model.Order{Code: "DH8", UserID: 9, ItemType: model.ItemTypeCourse, ItemRef: "4", Status: model.OrderStatusPaid})
		Expect(store.CreateFulfillment(context.Background(), order.ID, clk.Now())).Should(Succeed())

		r := internal.NewReconciler(store, internal.NewFulfiller(store, clk, logger), 50, 10, logger)

		delivered, err := r.Reconcile(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(delivered).Should(Equal(1))
		Expect(store.courseCount(9)).Should(Equal(1))

		delivered, err = r.Reconcile(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(delivered).Should(Equal(0))
	})
})
