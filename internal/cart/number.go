package cart

import (
	"encoding/json"
	"strconv"
)

// Number decodes JSON values permissively: numbers pass through, numeric
// strings are parsed, and anything else (null, objects, garbage strings,
// absent fields) becomes 0. It never reports an error.
//
// This is a deliberate policy, not sloppiness: a malformed price or quantity
// on a cart line must contribute nothing to a quote instead of failing the
// whole request.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = Number(f)
			return nil
		}
	}

	*n = 0
	return nil
}
