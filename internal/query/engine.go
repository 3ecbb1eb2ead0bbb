// Package query turns the raw invoice list plus the user's query state into
// the ordered, filtered and paginated view shown to the operator.
package query

import (
	"slices"
	"strings"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

// Params is the query state the engine evaluates.
type Params struct {
	StatusTab  model.StatusTab
	SearchText string
	SortKey    model.SortKey
	SortOrder  model.SortOrder
	Filters    []model.Filter
}

// Evaluate sorts invoices and then keeps the ones matching the status tab,
// the search text and every filter. The input slice is never modified.
func Evaluate(invoices []model.Invoice, p Params) []model.Invoice {
	sorted := Sort(invoices, p.SortKey, p.SortOrder)

	tab := p.StatusTab
	if tab == "" {
		tab = model.TabAll
	}
	needle := strings.ToLower(p.SearchText)

	result := make([]model.Invoice, 0, len(sorted))
	for _, inv := range sorted {
		if !tab.Matches(inv.Status) {
			continue
		}
		if !strings.Contains(strings.ToLower(inv.Client), needle) {
			continue
		}
		if !MatchesAll(inv, p.Filters) {
			continue
		}
		result = append(result, inv)
	}
	return result
}

// Sort returns a stably sorted copy of invoices ordered by the raw string
// value of key. An empty key keeps the input order.
func Sort(invoices []model.Invoice, key model.SortKey, order model.SortOrder) []model.Invoice {
	sorted := slices.Clone(invoices)
	if key == model.SortNone {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b model.Invoice) int {
		cmp := strings.Compare(a.Field(key), b.Field(key))
		if order == model.SortDescending {
			return -cmp
		}
		return cmp
	})
	return sorted
}
