package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("Draft").IsValid())
	assert.False(t, Status("paid").IsValid())
}

func TestStatusTabMatches(t *testing.T) {
	tests := []struct {
		tab    StatusTab
		status Status
		want   bool
	}{
		{tab: TabAll, status: StatusPaid, want: true},
		{tab: TabAll, status: StatusOverdue, want: true},
		{tab: StatusTab(StatusPaid), status: StatusPaid, want: true},
		{tab: StatusTab(StatusPaid), status: StatusPending, want: false},
		{tab: StatusTab(StatusOverdue), status: StatusOverdue, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab)+"/"+string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tab.Matches(tt.status))
		})
	}
}

func TestParseStatusTab(t *testing.T) {
	tab, err := ParseStatusTab(" overdue ")
	require.NoError(t, err)
	assert.Equal(t, StatusTab(StatusOverdue), tab)

	tab, err = ParseStatusTab("ALL")
	require.NoError(t, err)
	assert.Equal(t, TabAll, tab)
	assert.True(t, tab.IsValid())

	_, err = ParseStatusTab("Draft")
	require.Error(t, err)
	assert.False(t, StatusTab("Draft").IsValid())
}

func TestInvoiceField(t *testing.T) {
	inv := Invoice{
		ID:        "INV-7",
		Client:    "Acme",
		IssueDate: "2024-01-01",
		DueDate:   "2024-01-31",
		Amount:    "$10.00 XLM",
		Status:    StatusPending,
	}

	expected := map[SortKey]string{
		SortByID:        "INV-7",
		SortByClient:    "Acme",
		SortByIssueDate: "2024-01-01",
		SortByDueDate:   "2024-01-31",
		SortByAmount:    "$10.00 XLM",
		SortByStatus:    "Pending",
	}
	for key, want := range expected {
		assert.Equal(t, want, inv.Field(key), key)
	}
	assert.Empty(t, inv.Field(SortNone))
}
