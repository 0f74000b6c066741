package cart

import (
	"encoding/json"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeQuote_EmptyCartHasNoQuote(t *testing.T) {
	if _, ok := ComputeQuote(nil); ok {
		t.Fatal("expected no quote for nil items")
	}
	if _, ok := ComputeQuote([]LineItem{}); ok {
		t.Fatal("expected no quote for empty items")
	}
}

func TestComputeQuote_Subtotal(t *testing.T) {
	quote, ok := ComputeQuote([]LineItem{{Price: 29.9, Quantity: 2}})
	if !ok {
		t.Fatal("expected a quote")
	}
	if !almostEqual(quote.Subtotal, 59.8) {
		t.Fatalf("expected subtotal 59.8, got %v", quote.Subtotal)
	}
	if !almostEqual(quote.DeliveryFee, BaseDeliveryFee) {
		t.Fatalf("expected base fee, got %v", quote.DeliveryFee)
	}
	if !almostEqual(quote.Total, quote.Subtotal+quote.DeliveryFee) {
		t.Fatalf("total %v != subtotal+fee", quote.Total)
	}
}

func TestComputeQuote_FeeThresholdIsStrict(t *testing.T) {
	// exactly 80.00 still pays the fee
	quote, _ := ComputeQuote([]LineItem{{Price: 80, Quantity: 1}})
	if !almostEqual(quote.DeliveryFee, 5) {
		t.Fatalf("expected fee 5 at subtotal 80.00, got %v", quote.DeliveryFee)
	}

	// 80.01 crosses the threshold
	quote, _ = ComputeQuote([]LineItem{{Price: 80.01, Quantity: 1}})
	if !almostEqual(quote.DeliveryFee, 0) {
		t.Fatalf("expected fee 0 at subtotal 80.01, got %v", quote.DeliveryFee)
	}
	if !almostEqual(quote.Total, 80.01) {
		t.Fatalf("expected total 80.01, got %v", quote.Total)
	}
}

func TestComputeQuote_ZeroValueItemsContributeNothing(t *testing.T) {
	quote, _ := ComputeQuote([]LineItem{
		{Price: 10, Quantity: 2},
		{Price: 0, Quantity: 5},
		{Price: 99, Quantity: 0},
	})
	if !almostEqual(quote.Subtotal, 20) {
		t.Fatalf("expected subtotal 20, got %v", quote.Subtotal)
	}
}

func TestNumber_PermissiveDecoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"12.5"`, 12.5},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"a":1}`, 0},
		{"bool", `true`, 0},
	}

	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !almostEqual(float64(n), tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, float64(n))
		}
	}
}

func TestLineItem_MalformedFieldsDecodeToZero(t *testing.T) {
	raw := `{"id":101,"name":"Margherita","price":"not-a-price","restaurantId":1}`
	var item LineItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Price != 0 || item.Quantity != 0 {
		t.Fatalf("expected zero price and quantity, got %+v", item)
	}

	quote, ok := ComputeQuote([]LineItem{item})
	if !ok {
		t.Fatal("expected a quote for a one-item cart")
	}
	if !almostEqual(quote.Subtotal, 0) {
		t.Fatalf("malformed item contributed to subtotal: %v", quote.Subtotal)
	}
}
