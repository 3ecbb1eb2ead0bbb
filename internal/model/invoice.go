package model

import (
	"fmt"
	"strings"
)

// Status is the settlement state of an invoice.
type Status string

// Invoice statuses.
const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

// Statuses lists every invoice status in display order.
var Statuses = []Status{StatusPaid, StatusPending, StatusOverdue}

// IsValid returns true if s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	default:
		return false
	}
}

// StatusTab selects which statuses are visible in the list.
type StatusTab string

// TabAll shows every invoice regardless of status.
const TabAll StatusTab = "All"

// StatusTabs lists the tabs in display order.
var StatusTabs = []StatusTab{TabAll, StatusTab(StatusPaid), StatusTab(StatusPending), StatusTab(StatusOverdue)}

// IsValid returns true if t is All or names a known status.
func (t StatusTab) IsValid() bool {
	return t == TabAll || Status(t).IsValid()
}

// Matches reports whether an invoice with status s is visible under tab t.
func (t StatusTab) Matches(s Status) bool {
	return t == TabAll || Status(t) == s
}

// ParseStatusTab resolves a tab name case-insensitively.
func ParseStatusTab(name string) (StatusTab, error) {
	for _, tab := range StatusTabs {
		if strings.EqualFold(string(tab), strings.TrimSpace(name)) {
			return tab, nil
		}
	}
	return "", fmt.Errorf("unknown status tab %q", name)
}

// Invoice is a single billing record as supplied by the data source.
// Dates and amount are kept exactly as received so that sorting can compare
// the raw strings.
type Invoice struct {
	ID        string `json:"id" validate:"required"`
	Client    string `json:"client" validate:"required"`
	IssueDate string `json:"issueDate" validate:"required"`
	DueDate   string `json:"dueDate" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	Status    Status `json:"status" validate:"required,oneof=Paid Pending Overdue"`
}

// Field returns the raw value of the column identified by key.
func (i Invoice) Field(key SortKey) string {
	switch key {
	case SortByID:
		return i.ID
	case SortByClient:
		return i.Client
	case SortByIssueDate:
		return i.IssueDate
	case SortByDueDate:
		return i.DueDate
	case SortByAmount:
		return i.Amount
	case SortByStatus:
		return string(i.Status)
	default:
		return ""
	}
}
