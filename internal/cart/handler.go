package cart

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the quote endpoint.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/cart/quote", h.quoteCart)
}

type quoteRequest struct {
	Items []LineItem `json:"items"`
}

// quoteCart prices the submitted items. A malformed body or absent items
// field is treated as an empty cart, never rejected; the empty cart gets
// the base-fee quote so the client always receives a full breakdown.
func (h *Handler) quoteCart(c *fiber.Ctx) error {
	payload := new(quoteRequest)
	if err := c.BodyParser(payload); err != nil {
		payload.Items = nil
	}

	quote, ok := ComputeQuote(payload.Items)
	if !ok {
		quote = Quote{Subtotal: 0, DeliveryFee: BaseDeliveryFee, Total: BaseDeliveryFee}
	}
	return c.JSON(quote)
}
