package components

import "github.com/Veraticus/stellar-invoices/internal/model"

// FilterCommittedMsg is sent after the dialog appended a filter.
type FilterCommittedMsg struct {
	Filter model.Filter
}

// FilterCanceledMsg is sent when the dialog was dismissed without a filter.
type FilterCanceledMsg struct{}
