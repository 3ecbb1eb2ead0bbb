package query

import "github.com/Veraticus/stellar-invoices/internal/model"

// ToggleSort returns the sort state after the operator clicks the column key.
// Clicking the active column flips the direction; any other column starts ascending.
func ToggleSort(currentKey model.SortKey, currentOrder model.SortOrder, key model.SortKey) (model.SortKey, model.SortOrder) {
	if key == currentKey {
		return key, currentOrder.Flip()
	}
	return key, model.SortAscending
}
