package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	b := NewBuilder(NewSequenceGenerator("f"))
	b.Open()
	return b
}

func TestBuilder_Steps(t *testing.T) {
	b := NewBuilder(nil)
	assert.Equal(t, StepClosed, b.Step())

	b.Open()
	assert.Equal(t, StepSelectingType, b.Step())

	b.SetType(model.FilterAmount)
	assert.Equal(t, StepConfiguringAmount, b.Step())

	b.SetType(model.FilterDate)
	assert.Equal(t, StepConfiguringDate, b.Step())

	b.Close()
	assert.Equal(t, StepClosed, b.Step())
}

func TestBuilder_SetTypeResetsSubMode(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterDate)
	b.SetDateTab(DateTabCustom)
	b.SetDateOperator(model.OpBefore)

	b.SetType(model.FilterDate)
	assert.Equal(t, DateTabPreset, b.DateTab())
	assert.Equal(t, model.OpAfter, b.DateOperator())

	b.SetType(model.FilterAmount)
	b.SetAmountOperator(model.OpLess)
	b.SetType(model.FilterAmount)
	assert.Equal(t, model.OpGreater, b.AmountOperator())
}

func TestBuilder_ConfirmTypeKeepsSubMode(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterAmount)
	b.SetAmountOperator(model.OpGreaterEqual)
	b.SetAmountValue("50")
	_, err := b.Commit(fixedNow)
	require.NoError(t, err)

	b.Open()
	assert.Equal(t, StepSelectingType, b.Step())
	b.ConfirmType()
	assert.Equal(t, StepConfiguringAmount, b.Step())
	assert.Equal(t, model.OpGreaterEqual, b.AmountOperator())

	b.SetType(model.FilterDate)
	b.SetDateTab(DateTabCustom)
	b.SetDateOperator(model.OpBefore)
	b.Close()

	b.Open()
	b.ConfirmType()
	assert.Equal(t, StepConfiguringDate, b.Step())
	assert.Equal(t, DateTabCustom, b.DateTab())
	assert.Equal(t, model.OpBefore, b.DateOperator())
}

func TestBuilder_IgnoresUnknownSelections(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterType("color"))
	assert.Equal(t, model.FilterDate, b.Type())
	assert.Equal(t, StepSelectingType, b.Step())

	b.SetDateOperator(model.OpGreater)
	assert.Equal(t, model.OpAfter, b.DateOperator())

	b.SetAmountOperator(model.OpAfter)
	assert.Equal(t, model.OpGreater, b.AmountOperator())

	b.SetDateTab(DateTab("calendar"))
	assert.Equal(t, DateTabPreset, b.DateTab())
}

func TestBuilder_CommitPreset(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterDate)
	b.SetPreset(preset.Yesterday)

	f, err := b.Commit(fixedNow)
	require.NoError(t, err)

	assert.Equal(t, model.Filter{
		ID:       "f-1",
		Type:     model.FilterDate,
		Operator: model.OpAfter,
		Value:    "2024-03-14",
		Display:  "Yesterday",
		Preset:   "yesterday",
	}, f)
	assert.False(t, b.IsOpen())
}

func TestBuilder_CommitDefaultPreset(t *testing.T) {
	b := newTestBuilder()

	f, err := b.Commit(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14", f.Value)
	assert.Equal(t, "Last 30 days", f.Display)
	assert.Equal(t, string(preset.Last30Days), f.Preset)
}

func TestBuilder_CommitCustomDate(t *testing.T) {
	tests := []struct {
		name        string
		operator    model.Operator
		wantDisplay string
	}{
		{name: "after", operator: model.OpAfter, wantDisplay: "After 2024-01-15"},
		{name: "before", operator: model.OpBefore, wantDisplay: "Before 2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder()
			b.SetType(model.FilterDate)
			b.SetDateTab(DateTabCustom)
			b.SetDateOperator(tt.operator)
			b.SetDateValue("2024-01-15")

			f, err := b.Commit(fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.operator, f.Operator)
			assert.Equal(t, "2024-01-15", f.Value)
			assert.Equal(t, tt.wantDisplay, f.Display)
			assert.Empty(t, f.Preset)
		})
	}
}

func TestBuilder_CommitAmount(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterAmount)
	b.SetAmountOperator(model.OpGreaterEqual)
	b.SetAmountValue("75")

	f, err := b.Commit(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, model.FilterAmount, f.Type)
	assert.Equal(t, model.OpGreaterEqual, f.Operator)
	assert.Equal(t, "75", f.Value)
	assert.Equal(t, "Amount >= 75 XLM", f.Display)
}

func TestBuilder_CommitGuards(t *testing.T) {
	tests := []struct {
		setup func(*Builder)
		name  string
	}{
		{
			name: "empty custom date",
			setup: func(b *Builder) {
				b.SetType(model.FilterDate)
				b.SetDateTab(DateTabCustom)
			},
		},
		{
			name: "blank custom date",
			setup: func(b *Builder) {
				b.SetType(model.FilterDate)
				b.SetDateTab(DateTabCustom)
				b.SetDateValue("   ")
			},
		},
		{
			name: "empty amount",
			setup: func(b *Builder) {
				b.SetType(model.FilterAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder()
			tt.setup(b)

			assert.False(t, b.CanCommit())
			_, err := b.Commit(fixedNow)
			assert.ErrorIs(t, err, ErrCommitBlocked)
			assert.True(t, b.IsOpen(), "blocked commit must leave the builder open")
		})
	}
}

func TestBuilder_CommitWhenClosed(t *testing.T) {
	b := NewBuilder(NewSequenceGenerator("f"))
	_, err := b.Commit(fixedNow)
	assert.ErrorIs(t, err, ErrBuilderClosed)
}

func TestBuilder_CommitResetsValuesButKeepsSelections(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterAmount)
	b.SetAmountOperator(model.OpLess)
	b.SetAmountValue("20")
	b.SetDateValue("2024-01-01")
	b.SetPreset(preset.ThisMonth)

	_, err := b.Commit(fixedNow)
	require.NoError(t, err)

	assert.Empty(t, b.AmountValue())
	assert.Empty(t, b.DateValue())
	assert.Equal(t, model.OpLess, b.AmountOperator())
	assert.Equal(t, preset.ThisMonth, b.Preset())

	b.Open()
	assert.Equal(t, model.FilterAmount, b.Type())
}

func TestBuilder_CommitIssuesFreshIDs(t *testing.T) {
	b := NewBuilder(NewSequenceGenerator("f"))
	var ids []string
	for i := 0; i < 3; i++ {
		b.Open()
		f, err := b.Commit(fixedNow)
		require.NoError(t, err)
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"f-1", "f-2", "f-3"}, ids)
}

func TestBuilder_PreviewLabel(t *testing.T) {
	b := newTestBuilder()
	b.SetType(model.FilterAmount)
	assert.Equal(t, "Amount > 0", b.PreviewLabel(fixedNow))

	b.SetAmountValue("12.5")
	assert.Equal(t, "Amount > 12.5 XLM", b.PreviewLabel(fixedNow))

	b.SetType(model.FilterDate)
	b.SetPreset(preset.Today)
	assert.Equal(t, "Today", b.PreviewLabel(fixedNow))

	b.SetDateTab(DateTabCustom)
	b.SetDateValue("2024-01-02")
	assert.Equal(t, "After 2024-01-02", b.PreviewLabel(fixedNow))
}
