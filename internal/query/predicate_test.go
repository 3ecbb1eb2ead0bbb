package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "currency with symbol and code", input: "$1,234.56 XLM", want: "1234.56"},
		{name: "plain number", input: "75", want: "75"},
		{name: "negative", input: "-$12.00", want: "-12"},
		{name: "empty", input: "", wantErr: true},
		{name: "no digits", input: "XLM", wantErr: true},
		{name: "two decimal points", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnparseable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{
		"2024-03-14",
		"2024-03-14T23:59:00Z",
		"2024-03-14T08:00:00",
		"2024-03-14T23:00:00-05:00",
		"2024-03-14T01:00:00+09:00",
	} {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.Equal(t, "2024-03-14", got.Format("2006-01-02"), input)
		assert.Equal(t, time.UTC, got.Location(), input)
	}

	_, err := ParseDate("14/03/2024")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestMatches_Amount(t *testing.T) {
	inv := model.Invoice{Amount: "$100.00 XLM"}

	tests := []struct {
		op    model.Operator
		value string
		want  bool
	}{
		{op: model.OpGreater, value: "75", want: true},
		{op: model.OpGreater, value: "100", want: false},
		{op: model.OpGreaterEqual, value: "100", want: true},
		{op: model.OpEqual, value: "100.00", want: true},
		{op: model.OpEqual, value: "100.01", want: false},
		{op: model.OpLessEqual, value: "100", want: true},
		{op: model.OpLess, value: "100", want: false},
		{op: model.OpLess, value: "1,000", want: true},
		{op: model.Operator("!="), value: "100", want: true},
		{op: model.OpGreater, value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op)+tt.value, func(t *testing.T) {
			f := model.Filter{Type: model.FilterAmount, Operator: tt.op, Value: tt.value}
			assert.Equal(t, tt.want, Matches(inv, f))
		})
	}
}

func TestMatches_AmountUnparseableInvoice(t *testing.T) {
	inv := model.Invoice{Amount: "n/a"}
	assert.False(t, Matches(inv, model.Filter{Type: model.FilterAmount, Operator: model.OpLess, Value: "10"}))
	assert.True(t, Matches(inv, model.Filter{Type: model.FilterAmount, Operator: model.Operator("??"), Value: "10"}))
}

func TestMatches_DateBoundsAreInclusive(t *testing.T) {
	inv := model.Invoice{IssueDate: "2024-02-01"}

	tests := []struct {
		name  string
		op    model.Operator
		value string
		want  bool
	}{
		{name: "after same day", op: model.OpAfter, value: "2024-02-01", want: true},
		{name: "after earlier day", op: model.OpAfter, value: "2024-01-31", want: true},
		{name: "after later day", op: model.OpAfter, value: "2024-02-02", want: false},
		{name: "before same day", op: model.OpBefore, value: "2024-02-01", want: true},
		{name: "before earlier day", op: model.OpBefore, value: "2024-01-31", want: false},
		{name: "unparseable bound", op: model.OpAfter, value: "soon", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := model.Filter{Type: model.FilterDate, Operator: tt.op, Value: tt.value}
			assert.Equal(t, tt.want, Matches(inv, f))
		})
	}
}

func TestMatches_UnparseableIssueDate(t *testing.T) {
	inv := model.Invoice{IssueDate: "last tuesday"}
	assert.False(t, Matches(inv, model.Filter{Type: model.FilterDate, Operator: model.OpAfter, Value: "2024-01-01"}))
	assert.False(t, Matches(inv, model.Filter{Type: model.FilterDate, Operator: model.OpBefore, Value: "2024-01-01"}))
}
