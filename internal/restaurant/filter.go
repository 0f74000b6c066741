package restaurant

import (
	"sort"
	"strings"
)

// Sort keys accepted by FilterAndSort. Any other value keeps catalog order.
const (
	SortRatingDesc     = "rating_desc"
	SortDeliveryFeeAsc = "delivery_fee_asc"
)

// normalize trims and lowercases a query term. An empty result means
// "no filter".
func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FilterAndSort returns the restaurants matching the search and category
// terms, ordered by the given sort key. It is a pure function: the input
// slice is never modified.
//
// A restaurant matches the search term when the term is a case-insensitive
// substring of its name or category; the category term must match the
// category exactly (case-insensitive). Empty terms match everything.
// rating_desc is checked before delivery_fee_asc, so it wins if both could
// somehow apply. Both sorts are stable: ties keep catalog order.
func FilterAndSort(restaurants []Restaurant, searchTerm, categoryTerm, sortKey string) []Restaurant {
	search := normalize(searchTerm)
	category := normalize(categoryTerm)

	filtered := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		name := normalize(r.Name)
		cat := normalize(r.Category)

		matchesSearch := search == "" ||
			strings.Contains(name, search) ||
			strings.Contains(cat, search)
		matchesCategory := category == "" || cat == category

		if matchesSearch && matchesCategory {
			filtered = append(filtered, r)
		}
	}

	switch normalize(sortKey) {
	case SortRatingDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortDeliveryFeeAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DeliveryFee < filtered[j].DeliveryFee
		})
	}

	return filtered
}
