package products

import (
	"strings"

	"github.com/google/uuid"
)

// StoreFilterAll disables store scoping in FilterProducts.
const StoreFilterAll = "all"

// FilterProducts narrows a catalog slice by store and search term.
//
// storeID is either the sentinel "all" (or empty), which keeps every store,
// or a store id compared exactly against each product's store. A non-empty
// term matches when it appears case-insensitively inside the product's name,
// description, or category. Both conditions must hold at once, and matching
// products keep their input order. The input slice is never mutated.
func FilterProducts(products []ProductDTO, storeID string, term string) []ProductDTO {
	storeID = strings.TrimSpace(storeID)
	byStore := storeID != "" && storeID != StoreFilterAll

	var wantStore uuid.UUID
	if byStore {
		parsed, err := uuid.Parse(storeID)
		if err != nil {
			// An unparseable store id matches nothing.
			return []ProductDTO{}
		}
		wantStore = parsed
	}

	needle := strings.ToLower(term)

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		if byStore && p.StoreID != wantStore {
			continue
		}
		if needle != "" && !matchesTerm(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p ProductDTO, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle) {
		return true
	}
	if p.Category != nil && strings.Contains(strings.ToLower(*p.Category), needle) {
		return true
	}
	return false
}
