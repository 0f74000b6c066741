package cart

// Delivery fee policy: a single flat fee, waived when the subtotal is
// strictly above the free-delivery threshold. This is the only fee rule in
// the system; the per-restaurant deliveryFee on catalog entries is display
// data and never enters a quote.
const (
	BaseDeliveryFee       = 5.0
	FreeDeliveryThreshold = 80.0
)

// Quote is the computed price breakdown for a cart at a point in time.
// It is always derived fresh from the line items, never stored.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// ComputeQuote prices the given line items. The second return value is
// false for an empty cart: an empty cart has no quote, and callers must
// decide what to show instead.
func ComputeQuote(items []LineItem) (Quote, bool) {
	if len(items) == 0 {
		return Quote{}, false
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += float64(item.Price) * float64(item.Quantity)
	}

	fee := BaseDeliveryFee
	if subtotal > FreeDeliveryThreshold {
		fee = 0
	}

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
	}, true
}
