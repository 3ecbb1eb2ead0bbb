package viewmodel

import (
	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

// DialogField identifies one row of the filter dialog.
type DialogField int

const (
	// FieldType picks date or amount.
	FieldType DialogField = iota
	// FieldDateTab picks preset or custom date entry.
	FieldDateTab
	// FieldPreset picks a date preset.
	FieldPreset
	// FieldDateOperator picks after or before.
	FieldDateOperator
	// FieldAmountOperator picks the amount comparison.
	FieldAmountOperator
	// FieldValue is the free text input.
	FieldValue
)

// FilterDialogView is the display data for the filter dialog.
type FilterDialogView struct {
	Title     string
	Preview   string
	Fields    []FieldView
	Step      filter.Step
	Open      bool
	CanCommit bool
}

// FieldView is one dialog row.
type FieldView struct {
	Label   string
	Value   string
	Options []OptionView
	Field   DialogField
	Focused bool
}

// OptionView is one choice of a selector row.
type OptionView struct {
	Label    string
	Selected bool
}

// IsInput returns true for the free text row.
func (f FieldView) IsInput() bool {
	return f.Field == FieldValue
}

// DialogFields lists the rows shown for the builder's current step.
func DialogFields(b session.BuilderSnapshot) []DialogField {
	switch b.Step {
	case filter.StepClosed:
		return nil
	case filter.StepConfiguringAmount:
		return []DialogField{FieldType, FieldAmountOperator, FieldValue}
	case filter.StepConfiguringDate:
		if b.DateTab == filter.DateTabPreset {
			return []DialogField{FieldType, FieldDateTab, FieldPreset}
		}
		return []DialogField{FieldType, FieldDateTab, FieldDateOperator, FieldValue}
	default:
		return []DialogField{FieldType}
	}
}

// NewFilterDialogView builds the dialog view. focus indexes DialogFields and
// input is the text currently typed in the value row.
func NewFilterDialogView(b session.BuilderSnapshot, focus int, input string) FilterDialogView {
	view := FilterDialogView{
		Title:     "Add filter",
		Preview:   b.PreviewLabel,
		Step:      b.Step,
		Open:      b.Open,
		CanCommit: b.CanCommit,
	}

	for i, field := range DialogFields(b) {
		fv := FieldView{Field: field, Focused: i == focus}
		switch field {
		case FieldType:
			fv.Label = "Type"
			for _, t := range []model.FilterType{model.FilterDate, model.FilterAmount} {
				fv.Options = append(fv.Options, OptionView{
					Label:    FilterTypeLabel(t),
					Selected: b.Step != filter.StepSelectingType && t == b.Type,
				})
			}
		case FieldDateTab:
			fv.Label = "Mode"
			for _, tab := range []filter.DateTab{filter.DateTabPreset, filter.DateTabCustom} {
				fv.Options = append(fv.Options, OptionView{Label: DateTabLabel(tab), Selected: tab == b.DateTab})
			}
		case FieldPreset:
			fv.Label = "Range"
			for _, p := range preset.All {
				fv.Options = append(fv.Options, OptionView{Label: p.Label(), Selected: p == b.Preset})
			}
		case FieldDateOperator:
			fv.Label = "When"
			for _, op := range model.DateOperators {
				fv.Options = append(fv.Options, OptionView{Label: DateOperatorLabel(op), Selected: op == b.DateOperator})
			}
		case FieldAmountOperator:
			fv.Label = "Compare"
			for _, op := range model.AmountOperators {
				fv.Options = append(fv.Options, OptionView{Label: string(op), Selected: op == b.AmountOperator})
			}
		case FieldValue:
			fv.Label = "Value"
			fv.Value = input
			if b.Type == model.FilterDate {
				fv.Label = "Date"
			}
		}
		view.Fields = append(view.Fields, fv)
	}

	return view
}

// FilterTypeLabel returns the label of a filter family.
func FilterTypeLabel(t model.FilterType) string {
	if t == model.FilterAmount {
		return "Amount"
	}
	return "Date"
}

// DateTabLabel returns the label of a date entry mode.
func DateTabLabel(tab filter.DateTab) string {
	if tab == filter.DateTabCustom {
		return "Custom"
	}
	return "Preset"
}

// DateOperatorLabel returns the label of a date operator.
func DateOperatorLabel(op model.Operator) string {
	if op == model.OpBefore {
		return "Before"
	}
	return "After"
}
