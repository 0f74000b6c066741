package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func postQuote(t *testing.T, app *fiber.App, body string) (int, Quote) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/cart/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var quote Quote
	if err := json.NewDecoder(res.Body).Decode(&quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res.StatusCode, quote
}

func TestQuoteCart(t *testing.T) {
	app := makeApp()

	status, quote := postQuote(t, app, `{"items":[{"id":101,"price":29.9,"quantity":2,"restaurantId":1}]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !almostEqual(quote.Subtotal, 59.8) || !almostEqual(quote.DeliveryFee, 5) || !almostEqual(quote.Total, 64.8) {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestQuoteCart_FreeDeliveryAboveThreshold(t *testing.T) {
	app := makeApp()

	_, quote := postQuote(t, app, `{"items":[{"price":54.9,"quantity":2}]}`)
	if !almostEqual(quote.DeliveryFee, 0) {
		t.Fatalf("expected free delivery, got fee %v", quote.DeliveryFee)
	}
	if !almostEqual(quote.Total, 109.8) {
		t.Fatalf("expected total 109.8, got %v", quote.Total)
	}
}

func TestQuoteCart_MalformedBodyIsEmptyCart(t *testing.T) {
	app := makeApp()

	// garbage body, missing items field, wrong items type: none are hard errors
	for _, body := range []string{`not json at all`, `{}`, `{"items":"nope"}`} {
		status, quote := postQuote(t, app, body)
		if status != fiber.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", body, status)
		}
		if !almostEqual(quote.Subtotal, 0) || !almostEqual(quote.DeliveryFee, 5) || !almostEqual(quote.Total, 5) {
			t.Fatalf("expected empty-cart quote for %q, got %+v", body, quote)
		}
	}
}

func TestQuoteCart_NonNumericValuesBecomeZero(t *testing.T) {
	app := makeApp()

	_, quote := postQuote(t, app, `{"items":[{"price":"oops","quantity":3},{"price":10,"quantity":1}]}`)
	if !almostEqual(quote.Subtotal, 10) {
		t.Fatalf("expected subtotal 10, got %v", quote.Subtotal)
	}
}
