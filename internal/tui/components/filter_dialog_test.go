package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
	"github.com/Veraticus/stellar-invoices/internal/session"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
	"github.com/Veraticus/stellar-invoices/internal/tui/viewmodel"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func openDialog(t *testing.T) (*session.Session, FilterDialogModel) {
	t.Helper()
	s := session.New([]model.Invoice{
		{ID: "INV-1", Client: "Acme", Amount: "$100.00 XLM", IssueDate: "2024-01-01", DueDate: "2024-01-31", Status: model.StatusPaid},
		{ID: "INV-2", Client: "Beta", Amount: "$50.00 XLM", IssueDate: "2024-03-10", DueDate: "2024-04-01", Status: model.StatusPending},
	},
		session.WithClock(func() time.Time { return testNow }),
		session.WithIDGenerator(filter.NewSequenceGenerator("f")),
	)
	s.OpenFilterBuilder()
	d := NewFilterDialog(s, themes.Default)
	d.Reset()
	return s, d
}

func press(d FilterDialogModel, keys ...tea.KeyMsg) (FilterDialogModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		d, cmd = d.Update(k)
	}
	return d, cmd
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestFilterDialog_SelectTypeWithEnter(t *testing.T) {
	s, d := openDialog(t)
	assert.Equal(t, filter.StepSelectingType, s.Builder().Step())

	d, cmd := press(d, keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, filter.StepConfiguringDate, s.Builder().Step())
	assert.Len(t, d.ViewModel().Fields, 3)
}

func TestFilterDialog_AmountFilter(t *testing.T) {
	s, d := openDialog(t)

	d, _ = press(d, keyRight)
	require.Equal(t, filter.StepConfiguringAmount, s.Builder().Step())

	// operator row: > then >=
	d, _ = press(d, keyTab, keyRight)
	assert.Equal(t, model.OpGreaterEqual, s.Builder().AmountOperator())

	d, _ = press(d, keyTab)
	assert.Equal(t, viewmodel.FieldValue, d.Focused())
	d, _ = press(d, runes("75")...)
	assert.Equal(t, "75", s.Builder().AmountValue())
	assert.Equal(t, "Amount >= 75 XLM", d.ViewModel().Preview)

	_, cmd := press(d, keyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(FilterCommittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Amount >= 75 XLM", msg.Filter.Display)
	assert.Len(t, s.Filters(), 1)
	assert.False(t, s.Builder().IsOpen())
}

func TestFilterDialog_BlockedCommit(t *testing.T) {
	s, d := openDialog(t)

	d, _ = press(d, keyRight, keyEnter)

	assert.Empty(t, s.Filters())
	assert.True(t, s.Builder().IsOpen())
	assert.Contains(t, d.View(), "Enter a value first")
}

func TestFilterDialog_PresetCycle(t *testing.T) {
	s, d := openDialog(t)

	d, _ = press(d, keyEnter, keyTab, keyTab, keyLeft)
	assert.Equal(t, viewmodel.FieldPreset, d.Focused())
	assert.Equal(t, preset.Last7Days, s.Builder().Preset())

	_, cmd := press(d, keyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(FilterCommittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Last 7 days", msg.Filter.Display)
	assert.Equal(t, "2024-03-08", msg.Filter.Value)
}

func TestFilterDialog_CustomDate(t *testing.T) {
	s, d := openDialog(t)

	// choose date, move to mode row, switch to custom
	d, _ = press(d, keyEnter, keyTab, keyRight)
	require.Equal(t, filter.DateTabCustom, s.Builder().DateTab())
	assert.Len(t, d.ViewModel().Fields, 4)

	d, _ = press(d, keyTab, keyRight)
	assert.Equal(t, model.OpBefore, s.Builder().DateOperator())

	d, _ = press(d, keyTab)
	d, _ = press(d, runes("2024-02-01")...)
	_, cmd := press(d, keyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(FilterCommittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Before 2024-02-01", msg.Filter.Display)
	assert.Equal(t, []string{"INV-1"}, resultIDs(s))
}

func TestFilterDialog_Escape(t *testing.T) {
	s, d := openDialog(t)

	_, cmd := press(d, keyRight, keyEsc)
	require.NotNil(t, cmd)
	_, ok := cmd().(FilterCanceledMsg)
	assert.True(t, ok)
	assert.False(t, s.Builder().IsOpen())
	assert.Empty(t, s.Filters())
}

func TestFilterDialog_IgnoresNonKeyMessages(t *testing.T) {
	s, d := openDialog(t)
	_, cmd := d.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, filter.StepSelectingType, s.Builder().Step())
}

func resultIDs(s *session.Session) []string {
	ids := make([]string, 0)
	for _, inv := range s.Results() {
		ids = append(ids, inv.ID)
	}
	return ids
}
