package components

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
	"github.com/Veraticus/stellar-invoices/internal/session"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
	"github.com/Veraticus/stellar-invoices/internal/tui/viewmodel"
)

// FilterEditor is the part of a session the filter dialog drives.
type FilterEditor interface {
	Snapshot() session.Snapshot
	SetFilterType(t model.FilterType)
	ConfirmFilterType()
	SetDateTab(tab filter.DateTab)
	SetDatePreset(p preset.Preset)
	SetDateOperator(op model.Operator)
	SetDateValue(v string)
	SetAmountOperator(op model.Operator)
	SetAmountValue(v string)
	CommitFilter() (model.Filter, error)
	CloseFilterBuilder()
}

var filterTypes = []model.FilterType{model.FilterDate, model.FilterAmount}

var dateTabs = []filter.DateTab{filter.DateTabPreset, filter.DateTabCustom}

// FilterDialogModel edits the pending filter of a FilterEditor.
type FilterDialogModel struct {
	editor FilterEditor
	theme  themes.Theme
	err    string
	input  textinput.Model
	focus  int
	width  int
}

// NewFilterDialog creates a dialog driving editor.
func NewFilterDialog(editor FilterEditor, theme themes.Theme) FilterDialogModel {
	input := textinput.New()
	input.CharLimit = 32
	input.Prompt = ""

	return FilterDialogModel{
		editor: editor,
		theme:  theme,
		input:  input,
		width:  48,
	}
}

// Reset moves the focus to the first row and reloads the typed value.
func (m *FilterDialogModel) Reset() {
	m.focus = 0
	m.err = ""
	m.syncInput(m.builder())
}

// Resize sets the width of the dialog.
func (m *FilterDialogModel) Resize(width int) {
	m.width = width
}

// Update handles key presses while the dialog is open.
func (m FilterDialogModel) Update(msg tea.Msg) (FilterDialogModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = ""
	b := m.builder()
	fields := viewmodel.DialogFields(b)
	m.focus = min(m.focus, max(len(fields)-1, 0))
	focused := viewmodel.FieldType
	if len(fields) > 0 {
		focused = fields[m.focus]
	}

	switch keyMsg.String() {
	case "esc":
		m.editor.CloseFilterBuilder()
		m.input.Blur()
		return m, func() tea.Msg { return FilterCanceledMsg{} }

	case "enter":
		if b.Step == filter.StepSelectingType {
			m.chooseType(b, b.Type)
			m.afterChange()
			return m, nil
		}
		f, err := m.editor.CommitFilter()
		if err != nil {
			m.err = commitErrorText(err)
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		return m, func() tea.Msg { return FilterCommittedMsg{Filter: f} }

	case "tab", "down":
		m.focus = viewmodel.Cycle(m.focus, 1, len(fields))
		cmd := m.focusInput()
		return m, cmd

	case "shift+tab", "up":
		m.focus = viewmodel.Cycle(m.focus, -1, len(fields))
		cmd := m.focusInput()
		return m, cmd

	case "left", "right":
		if focused != viewmodel.FieldValue {
			delta := 1
			if keyMsg.String() == "left" {
				delta = -1
			}
			m.cycleOption(focused, b, delta)
			m.afterChange()
			return m, nil
		}
	}

	if focused != viewmodel.FieldValue {
		return m, nil
	}

	focusCmd := m.input.Focus()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if b.Type == model.FilterAmount {
		m.editor.SetAmountValue(m.input.Value())
	} else {
		m.editor.SetDateValue(m.input.Value())
	}
	return m, tea.Batch(focusCmd, cmd)
}

// ViewModel returns the display data of the dialog.
func (m FilterDialogModel) ViewModel() viewmodel.FilterDialogView {
	return viewmodel.NewFilterDialogView(m.builder(), m.focus, m.input.Value())
}

// View renders the dialog.
func (m FilterDialogModel) View() string {
	view := m.ViewModel()

	lines := []string{m.theme.Title.Render(view.Title), ""}
	for _, field := range view.Fields {
		marker := "  "
		if field.Focused {
			marker = lipgloss.NewStyle().Foreground(m.theme.Primary).Render("› ")
		}
		label := m.theme.Subtitle.Width(9).Render(field.Label)

		var value string
		if field.IsInput() {
			value = m.input.View()
		} else {
			opts := make([]string, 0, len(field.Options))
			for _, opt := range field.Options {
				if opt.Selected {
					opts = append(opts, m.theme.Selected.Render(" "+opt.Label+" "))
				} else {
					opts = append(opts, m.theme.Normal.Render(" "+opt.Label+" "))
				}
			}
			value = strings.Join(opts, "")
		}
		lines = append(lines, marker+label+value)
	}

	lines = append(lines, "")
	if view.Step != filter.StepSelectingType {
		lines = append(lines, m.theme.Subtitle.Render("Preview: ")+m.theme.Bold.Render(view.Preview))
	}
	if m.err != "" {
		lines = append(lines, m.theme.StatusError.Render(m.err))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("tab next field · ←/→ change · enter apply · esc cancel"))

	return m.theme.RoundedBox.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Focused returns the row that currently has focus.
func (m FilterDialogModel) Focused() viewmodel.DialogField {
	fields := viewmodel.DialogFields(m.builder())
	if len(fields) == 0 {
		return viewmodel.FieldType
	}
	return fields[min(m.focus, len(fields)-1)]
}

func (m FilterDialogModel) builder() session.BuilderSnapshot {
	return m.editor.Snapshot().Builder
}

func (m *FilterDialogModel) cycleOption(field viewmodel.DialogField, b session.BuilderSnapshot, delta int) {
	switch field {
	case viewmodel.FieldType:
		// nothing is highlighted yet: left picks the first option, right the last
		if b.Step == filter.StepSelectingType {
			if delta < 0 {
				m.chooseType(b, filterTypes[0])
			} else {
				m.chooseType(b, filterTypes[len(filterTypes)-1])
			}
			return
		}
		m.editor.SetFilterType(filterTypes[viewmodel.Cycle(slices.Index(filterTypes, b.Type), delta, len(filterTypes))])
	case viewmodel.FieldDateTab:
		m.editor.SetDateTab(dateTabs[viewmodel.Cycle(slices.Index(dateTabs, b.DateTab), delta, len(dateTabs))])
	case viewmodel.FieldPreset:
		m.editor.SetDatePreset(preset.All[viewmodel.Cycle(slices.Index(preset.All, b.Preset), delta, len(preset.All))])
	case viewmodel.FieldDateOperator:
		ops := model.DateOperators
		m.editor.SetDateOperator(ops[viewmodel.Cycle(slices.Index(ops, b.DateOperator), delta, len(ops))])
	case viewmodel.FieldAmountOperator:
		ops := model.AmountOperators
		m.editor.SetAmountOperator(ops[viewmodel.Cycle(slices.Index(ops, b.AmountOperator), delta, len(ops))])
	}
}

// chooseType leaves the step of picking a family. Picking the family used
// last time keeps its operator and date tab; another family starts from its
// defaults.
func (m *FilterDialogModel) chooseType(b session.BuilderSnapshot, t model.FilterType) {
	if t == b.Type {
		m.editor.ConfirmFilterType()
		return
	}
	m.editor.SetFilterType(t)
}

// afterChange keeps focus and input in step with the builder after a
// selection changed the visible rows.
func (m *FilterDialogModel) afterChange() {
	b := m.builder()
	fields := viewmodel.DialogFields(b)
	m.focus = min(m.focus, max(len(fields)-1, 0))
	m.syncInput(b)
}

func (m *FilterDialogModel) syncInput(b session.BuilderSnapshot) {
	if b.Type == model.FilterAmount {
		m.input.Placeholder = "e.g. 100"
		m.input.SetValue(b.AmountValue)
	} else {
		m.input.Placeholder = "YYYY-MM-DD"
		m.input.SetValue(b.DateValue)
	}
}

func (m *FilterDialogModel) focusInput() tea.Cmd {
	if m.Focused() == viewmodel.FieldValue {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func commitErrorText(err error) string {
	if errors.Is(err, filter.ErrCommitBlocked) {
		return "Enter a value first"
	}
	return fmt.Sprintf("Could not add filter: %v", err)
}
