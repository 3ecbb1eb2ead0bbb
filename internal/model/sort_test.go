package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{input: "amount", want: SortByAmount},
		{input: "IssueDate", want: SortByIssueDate},
		{input: " dueDate ", want: SortByDueDate},
		{input: "color", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, SortNone, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKeyTitles(t *testing.T) {
	titles := make([]string, 0, len(SortKeys))
	for _, key := range SortKeys {
		assert.True(t, key.IsValid())
		titles = append(titles, key.Title())
	}
	assert.Equal(t, []string{"Invoice", "Client", "Issued", "Due", "Amount", "Status"}, titles)
	assert.False(t, SortNone.IsValid())
}

func TestSortOrderFlip(t *testing.T) {
	assert.Equal(t, SortDescending, SortAscending.Flip())
	assert.Equal(t, SortAscending, SortDescending.Flip())
}
