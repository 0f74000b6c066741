package restaurant

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler wires catalog endpoints onto the Fiber app.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/restaurants", h.listRestaurants)
	app.Get("/api/restaurants/:id", h.getRestaurant)
	app.Get("/api/restaurants/:id/menu", h.getMenu)
	app.Get("/api/offers", h.listOffers)
}

func (h *Handler) listRestaurants(c *fiber.Ctx) error {
	restaurants := h.service.List(
		c.Query("search"),
		c.Query("category"),
		c.Query("sort"),
	)
	return c.JSON(restaurants)
}

func (h *Handler) getRestaurant(c *fiber.Ctx) error {
	// a non-numeric id can never match a restaurant, so it is a plain 404
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}

	rest, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Restaurant not found"})
	}
	return c.JSON(rest)
}

func (h *Handler) getMenu(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
	}

	menu, err := h.service.Menu(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
	}
	return c.JSON(menu)
}

func (h *Handler) listOffers(c *fiber.Ctx) error {
	return c.JSON(h.service.Offers())
}
