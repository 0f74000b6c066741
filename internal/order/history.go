package order

import (
	"encoding/json"
	"sync"
)

// historyLimit caps the retained order history.
const historyLimit = 3

// History keeps the most recent orders, newest first, capped at three
// entries. Re-adding an order id moves it to the front instead of
// duplicating it.
type History struct {
	mu     sync.RWMutex
	orders []Order
}

func NewHistory() *History {
	return &History{}
}

// NewHistoryFromJSON restores a history from a serialized snapshot. Missing
// or corrupt data yields an empty history, never an error: a broken snapshot
// must not break checkout.
func NewHistoryFromJSON(raw []byte) *History {
	h := NewHistory()
	if len(raw) == 0 {
		return h
	}
	var orders []Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return h
	}
	if len(orders) > historyLimit {
		orders = orders[:historyLimit]
	}
	h.orders = orders
	return h
}

// Add puts an order at the front of the history, dropping any previous entry
// with the same id and anything beyond the cap.
func (h *History) Add(o Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]Order, 0, len(h.orders)+1)
	kept = append(kept, o)
	for _, existing := range h.orders {
		if existing.ID == o.ID {
			continue
		}
		kept = append(kept, existing)
	}
	if len(kept) > historyLimit {
		kept = kept[:historyLimit]
	}
	h.orders = kept
}

// Recent returns a copy of the history, newest first.
func (h *History) Recent() []Order {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Order, len(h.orders))
	copy(out, h.orders)
	return out
}

// MarshalJSON serializes the history as a plain order array, the shape
// NewHistoryFromJSON accepts back.
func (h *History) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Recent())
}
