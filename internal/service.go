package internal

//go:generate mockgen -source=service.go -destination=mock/mock_service.go -package=mock_internal

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/clock"
	"github.com/DrGermanius/paysettle/internal/model"
)

const maxOrderCodeAttempts = 5

type IService interface {
	CreateOrder(context.Context, int, model.OrderInput) (model.OrderOutput, error)
	CreateCurrencyPackOrder(context.Context, int, model.CurrencyPackOrderInput) (model.OrderOutput, error)
	ValidateCoupon(context.Context, model.CouponValidateInput) model.CouponValidateOutput
	GetOrder(context.Context, model.Principal, string) (model.OrderOutput, error)
	GetOrders(context.Context, int) ([]model.OrderOutput, error)
	GetCurrencyPacks(context.Context) ([]model.CurrencyPackOutput, error)
}

type Service struct {
	Repository   IRepository
	coupons      *CouponEvaluator
	codes        *OrderCodes
	instructions PaymentInstructions
	clock        clock.Clock
	logger       *zap.SugaredLogger
}

func NewService(repository IRepository, codes *OrderCodes, instructions PaymentInstructions, clk clock.Clock, logger *zap.SugaredLogger) *Service {
	return &Service{
		Repository:   repository,
		coupons:      NewCouponEvaluator(repository, clk),
		codes:        codes,
		instructions: instructions,
		clock:        clk,
		logger:       logger,
	}
}

// CreateOrder prices the purchase, applying the coupon if one is given, and stores
// it as PENDING. Nothing is granted until the order is settled. Currency packs are
// priced server side and can only be bought through CreateCurrencyPackOrder.
func (s Service) CreateOrder(ctx context.Context, uid int, in model.OrderInput) (model.OrderOutput, error) {
	if in.ItemType == model.ItemTypeCurrencyPack {
		return model.OrderOutput{}, ErrInvalidItemType
	}
	return s.createOrder(ctx, uid, in)
}

func (s Service) createOrder(ctx context.Context, uid int, in model.OrderInput) (model.OrderOutput, error) {
	if !in.Amount.IsPositive() {
		return model.OrderOutput{}, ErrInvalidAmount
	}

	o := model.Order{
		UserID:         uid,
		OriginalAmount: in.Amount,
		DiscountAmount: decimal.Zero,
		Amount:         in.Amount,
		Description:    in.Description,
		ItemType:       in.ItemType,
		ItemRef:        in.ItemRef,
		Status:         model.OrderStatusPending,
	}

	if in.CouponCode != "" {
		d, err := s.coupons.Evaluate(ctx, in.CouponCode, in.Amount)
		if err != nil {
			return model.OrderOutput{}, err
		}
		code := in.CouponCode
		o.CouponCode = &code
		o.DiscountAmount = d.Discount
		o.Amount = d.Final
	}

	// a zero transfer never reaches settlement
	if !o.Amount.IsPositive() {
		return model.OrderOutput{}, ErrFreeOrder
	}

	if o.Description == "" {
		o.Description = defaultDescription(o.ItemType)
	}

	created, err := s.insertOrder(ctx, o)
	if err != nil {
		return model.OrderOutput{}, err
	}

	s.logger.Infow("order created",
		"order", created.Code,
		"user", uid,
		"amount", created.Amount.String(),
		"discount", created.DiscountAmount.String(),
		"itemType", created.ItemType,
	)
	return s.output(created), nil
}

func (s Service) CreateCurrencyPackOrder(ctx context.Context, uid int, in model.CurrencyPackOrderInput) (model.OrderOutput, error) {
	pack, err := s.Repository.GetCurrencyPackByID(ctx, in.PackID)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return model.OrderOutput{}, ErrCurrencyPackNotFound
		}
		return model.OrderOutput{}, err
	}
	if !pack.Active {
		return model.OrderOutput{}, ErrCurrencyPackInactive
	}

	return s.createOrder(ctx, uid, model.OrderInput{
		Amount:      pack.Price,
		Description: "Buy " + pack.Name,
		ItemType:    model.ItemTypeCurrencyPack,
		ItemRef:     strconv.Itoa(pack.ID),
		CouponCode:  in.CouponCode,
	})
}

// ValidateCoupon always answers with a validity result, never an error.
func (s Service) ValidateCoupon(ctx context.Context, in model.CouponValidateInput) model.CouponValidateOutput {
	out := model.CouponValidateOutput{
		DiscountAmount: decimal.Zero,
		FinalAmount:    in.OriginalAmount,
	}
	if !in.OriginalAmount.IsPositive() {
		out.Message = ErrInvalidAmount.Error()
		return out
	}

	d, err := s.coupons.Evaluate(ctx, in.CouponCode, in.OriginalAmount)
	if err != nil {
		if IsCouponRejection(err) {
			out.Message = err.Error()
			return out
		}
		s.logger.Errorw("validate coupon", "coupon", in.CouponCode, "error", err)
		out.Message = "coupon could not be validated"
		return out
	}

	return model.CouponValidateOutput{
		Valid:          true,
		DiscountAmount: d.Discount,
		FinalAmount:    d.Final,
		Message:        "coupon applied",
	}
}

func (s Service) GetOrder(ctx context.Context, p model.Principal, code string) (model.OrderOutput, error) {
	o, err := s.Repository.GetOrderByCode(ctx, code)
	if err != nil {
		return model.OrderOutput{}, err
	}
	if o.UserID != p.UserID && !p.IsAdmin() {
		return model.OrderOutput{}, ErrForbidden
	}
	return s.output(o), nil
}

func (s Service) GetOrders(ctx context.Context, uid int) ([]model.OrderOutput, error) {
	orders, err := s.Repository.GetOrders(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrNoRecords
	}

	res := make([]model.OrderOutput, 0, len(orders))
	for _, o := range orders {
		res = append(res, s.output(o))
	}
	return res, nil
}

func (s Service) GetCurrencyPacks(ctx context.Context) ([]model.CurrencyPackOutput, error) {
	packs, err := s.Repository.GetCurrencyPacks(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]model.CurrencyPackOutput, 0, len(packs))
	for _, p := range packs {
		res = append(res, model.CurrencyPackOutput{CurrencyPack: p, TotalCurrency: p.TotalCurrency()})
	}
	return res, nil
}

// insertOrder draws a new code for every attempt until the store accepts one.
func (s Service) insertOrder(ctx context.Context, o model.Order) (model.Order, error) {
	for i := 0; i < maxOrderCodeAttempts; i++ {
		code, err := s.codes.Next()
		if err != nil {
			return model.Order{}, err
		}

		o.Code = code
		o.CreatedAt = s.clock.Now()
		created, err := s.Repository.CreateOrder(ctx, o)
		if errors.Is(err, ErrOrderCodeTaken) {
			s.logger.Warnw("order code collision", "code", code, "attempt", i+1)
			continue
		}
		return created, err
	}
	return model.Order{}, ErrOrderCodeSpace
}

func (s Service) output(o model.Order) model.OrderOutput {
	return model.OrderOutput{
		Code:               o.Code,
		Amount:             o.Amount,
		OriginalAmount:     o.OriginalAmount,
		DiscountAmount:     o.DiscountAmount,
		Description:        o.Description,
		Status:             o.Status,
		ItemType:           o.ItemType,
		ItemRef:            o.ItemRef,
		CouponCode:         o.CouponCode,
		PaymentInstruction: s.instructions.URL(o.Code, o.Amount),
		CreatedAt:          o.CreatedAt,
	}
}

func defaultDescription(itemType string) string {
	if itemType == "" {
		return "Payment for order"
	}
	return fmt.Sprintf("Payment for %s", itemType)
}
