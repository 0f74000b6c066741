package order

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes order creation and the recent-order history.
type Handler struct {
	service *Service
	history *History
}

func NewHandler(service *Service, history *History) *Handler {
	return &Handler{service: service, history: history}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders/recent", h.recentOrders)
}

// createOrder accepts any payload and answers 201 with the synthesized
// order. There is no validation here: the cart enforces its invariants
// before checkout and the order echoes the payload back.
func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := json.RawMessage(c.Body())
	if !json.Valid(payload) {
		payload = nil
	}

	ord := h.service.Create(payload)
	h.history.Add(ord)
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) recentOrders(c *fiber.Ctx) error {
	return c.JSON(h.history.Recent())
}
