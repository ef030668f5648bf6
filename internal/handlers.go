package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/paysettle/internal/model"
)

// cassoTokenHeader is used by providers that do not send Authorization.
const cassoTokenHeader = "Secure-Token"

type Handlers struct {
	Service IService
	Webhook IWebhook
	secret  []byte
	logger  *zap.SugaredLogger
}

func NewHandlers(service IService, webhook IWebhook, jwtSecret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: service, Webhook: webhook, secret: []byte(jwtSecret), logger: logger}
}

func (h *Handlers) Routes(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")

	orders := api.Group("/orders")
	orders.Post("/", h.CreateOrder)
	orders.Get("/", h.GetOrders)
	orders.Post("/validate-coupon", h.ValidateCoupon)
	orders.Post("/currency-pack", h.CreateCurrencyPackOrder)
	orders.Get("/:code", h.GetOrder)

	api.Get("/currency-packs", h.GetCurrencyPacks)
	api.Post("/webhook/payment-confirm", h.PaymentWebhook)
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	p, err := principalFromToken(c, h.secret)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.OrderInput
	if err = c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on create order request", "data": "incorrect request format"})
	}

	o, err := h.Service.CreateOrder(c.Context(), p.UserID, i)
	if err != nil {
		return h.orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handlers) CreateCurrencyPackOrder(c *fiber.Ctx) error {
	p, err := principalFromToken(c, h.secret)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.CurrencyPackOrderInput
	if err = c.BodyParser(&i); err != nil || i.PackID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on create order request", "data": "incorrect request format"})
	}

	o, err := h.Service.CreateCurrencyPackOrder(c.Context(), p.UserID, i)
	if err != nil {
		return h.orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(o)
}

func (h *Handlers) ValidateCoupon(c *fiber.Ctx) error {
	var i model.CouponValidateInput
	if err := c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusOK).JSON(model.CouponValidateOutput{Message: "incorrect request format"})
	}

	return c.Status(fiber.StatusOK).JSON(h.Service.ValidateCoupon(c.Context(), i))
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	p, err := principalFromToken(c, h.secret)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	o, err := h.Service.GetOrder(c.Context(), p, c.Params("code"))
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "order not found"})
		}
		if errors.Is(err, ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error", "message": "not authorized"})
		}
		h.logger.Errorf("Error on get order request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	p, err := principalFromToken(c, h.secret)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.GetOrders(c.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		h.logger.Errorf("Error on get orders request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetCurrencyPacks(c *fiber.Ctx) error {
	packs, err := h.Service.GetCurrencyPacks(c.Context())
	if err != nil {
		h.logger.Errorf("Error on get currency packs request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusOK).JSON(packs)
}

func (h *Handlers) PaymentWebhook(c *fiber.Ctx) error {
	token := c.Get(fiber.HeaderAuthorization)
	if token == "" {
		token = c.Get(cassoTokenHeader)
	}

	res := h.Webhook.Ingest(c.Context(), token, c.Body())
	return c.Status(webhookStatus(res.ErrorCode)).JSON(res)
}

func (h *Handlers) orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidItemType), errors.Is(err, ErrFreeOrder),
		IsCouponRejection(err), errors.Is(err, ErrCurrencyPackInactive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
	case errors.Is(err, ErrCurrencyPackNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": err.Error()})
	default:
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on create order request"})
	}
}

// webhookStatus keeps terminal non-matches at 200 so the provider stops retrying;
// only processing errors ask for a redelivery.
func webhookStatus(code string) int {
	switch code {
	case "":
		return fiber.StatusOK
	case model.ErrorCodeUnauthorized:
		return fiber.StatusUnauthorized
	case model.ErrorCodeInvalidPayload:
		return fiber.StatusBadRequest
	case model.ErrorCodeProcessingError:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusOK
	}
}
