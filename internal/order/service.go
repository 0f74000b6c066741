package order

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	orderIDPrefix = "FO-"

	// estimatedDelivery is a fixed display estimate; there is no real
	// delivery-time calculation in scope.
	estimatedDelivery = "35-45 min"
)

// Service synthesizes orders. IDs combine a fixed prefix with the current
// unix-millisecond timestamp, which is unique enough for a single process
// creating orders at human speed.
type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Create builds an order from the submitted payload. The payload is echoed
// back untouched; a nil payload becomes an empty JSON object. Line items are
// assumed to share one restaurant — the cart enforces that before checkout,
// so the factory does not re-validate.
func (s *Service) Create(payload json.RawMessage) Order {
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}
	return Order{
		ID:                fmt.Sprintf("%s%d", orderIDPrefix, s.now().UnixMilli()),
		Status:            StatusCreated,
		EstimatedDelivery: estimatedDelivery,
		Payload:           payload,
	}
}
