package model

import (
	"fmt"
	"strings"
)

// SortKey names the invoice column used for ordering.
// The zero value means the list keeps its input order.
type SortKey string

// Sortable columns.
const (
	SortNone        SortKey = ""
	SortByID        SortKey = "id"
	SortByClient    SortKey = "client"
	SortByIssueDate SortKey = "issueDate"
	SortByDueDate   SortKey = "dueDate"
	SortByAmount    SortKey = "amount"
	SortByStatus    SortKey = "status"
)

// SortKeys lists the sortable columns in table order.
var SortKeys = []SortKey{SortByID, SortByClient, SortByIssueDate, SortByDueDate, SortByAmount, SortByStatus}

// IsValid returns true if k names a sortable column.
func (k SortKey) IsValid() bool {
	for _, key := range SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Title returns the column header for k.
func (k SortKey) Title() string {
	switch k {
	case SortByID:
		return "Invoice"
	case SortByClient:
		return "Client"
	case SortByIssueDate:
		return "Issued"
	case SortByDueDate:
		return "Due"
	case SortByAmount:
		return "Amount"
	case SortByStatus:
		return "Status"
	default:
		return ""
	}
}

// ParseSortKey resolves a column name case-insensitively.
func ParseSortKey(name string) (SortKey, error) {
	for _, key := range SortKeys {
		if strings.EqualFold(string(key), strings.TrimSpace(name)) {
			return key, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort key %q", name)
}

// SortOrder is the direction of a sort.
type SortOrder string

// Sort directions.
const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Flip returns the opposite direction.
func (o SortOrder) Flip() SortOrder {
	if o == SortAscending {
		return SortDescending
	}
	return SortAscending
}
