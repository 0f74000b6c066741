package order

import "encoding/json"

// StatusCreated is the only order status in the system. Orders are created
// at checkout and never transition afterwards.
const StatusCreated = "created"

// Order is the immutable record synthesized at checkout. Payload echoes
// whatever the client submitted; the service does not interpret it.
type Order struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	Payload           json.RawMessage `json:"payload"`
}
