package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
)

// ErrCommitBlocked is returned by Commit while the pending filter is incomplete.
var ErrCommitBlocked = errors.New("filter is incomplete")

// ErrBuilderClosed is returned by Commit when the builder is not open.
var ErrBuilderClosed = errors.New("filter builder is not open")

// DateTab selects how a date filter is specified.
type DateTab string

// Date tabs.
const (
	DateTabPreset DateTab = "preset"
	DateTabCustom DateTab = "custom"
)

// Step is the state of the builder.
type Step int

const (
	// StepClosed means no filter is being edited.
	StepClosed Step = iota
	// StepSelectingType means the builder was opened and no type was picked yet.
	StepSelectingType
	// StepConfiguringDate means a date filter is being edited.
	StepConfiguringDate
	// StepConfiguringAmount means an amount filter is being edited.
	StepConfiguringAmount
)

// String returns a string representation of the step.
func (s Step) String() string {
	switch s {
	case StepClosed:
		return "Closed"
	case StepSelectingType:
		return "SelectingType"
	case StepConfiguringDate:
		return "ConfiguringDate"
	case StepConfiguringAmount:
		return "ConfiguringAmount"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Builder accumulates the choices for one filter until Commit turns them into
// a model.Filter. Setters never fail and have no effect outside the builder.
type Builder struct {
	ids            IDGenerator
	filterType     model.FilterType
	dateTab        DateTab
	preset         preset.Preset
	dateOperator   model.Operator
	dateValue      string
	amountOperator model.Operator
	amountValue    string
	open           bool
	typeChosen     bool
}

// NewBuilder creates a closed builder with default selections.
func NewBuilder(ids IDGenerator) *Builder {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Builder{
		ids:            ids,
		filterType:     model.FilterDate,
		dateTab:        DateTabPreset,
		preset:         preset.Default,
		dateOperator:   model.OpAfter,
		amountOperator: model.OpGreater,
	}
}

// Open starts editing a new filter. Selections from the previous use are kept.
func (b *Builder) Open() {
	b.open = true
	b.typeChosen = false
}

// Close abandons the pending filter.
func (b *Builder) Close() {
	b.open = false
	b.typeChosen = false
}

// IsOpen returns true while a filter is being edited.
func (b *Builder) IsOpen() bool {
	return b.open
}

// Step returns the current builder state.
func (b *Builder) Step() Step {
	switch {
	case !b.open:
		return StepClosed
	case !b.typeChosen:
		return StepSelectingType
	case b.filterType == model.FilterAmount:
		return StepConfiguringAmount
	default:
		return StepConfiguringDate
	}
}

// SetType picks the filter family and resets its sub-mode to the defaults.
func (b *Builder) SetType(t model.FilterType) {
	switch t {
	case model.FilterDate:
		b.dateTab = DateTabPreset
		b.dateOperator = model.OpAfter
	case model.FilterAmount:
		b.amountOperator = model.OpGreater
	default:
		return
	}
	b.filterType = t
	b.typeChosen = true
}

// ConfirmType accepts the highlighted family without touching its sub-mode,
// so the operator and date tab of the previous filter carry over.
func (b *Builder) ConfirmType() {
	b.typeChosen = true
}

// SetDateTab switches between preset and custom date entry.
func (b *Builder) SetDateTab(tab DateTab) {
	if tab == DateTabPreset || tab == DateTabCustom {
		b.dateTab = tab
	}
}

// SetPreset selects the preset used by preset date filters.
func (b *Builder) SetPreset(p preset.Preset) {
	b.preset = p
}

// SetDateOperator selects after or before for custom date filters.
func (b *Builder) SetDateOperator(op model.Operator) {
	if op == model.OpAfter || op == model.OpBefore {
		b.dateOperator = op
	}
}

// SetDateValue stores the raw custom date.
func (b *Builder) SetDateValue(v string) {
	b.dateValue = v
}

// SetAmountOperator selects the amount comparison.
func (b *Builder) SetAmountOperator(op model.Operator) {
	for _, known := range model.AmountOperators {
		if op == known {
			b.amountOperator = op
			return
		}
	}
}

// SetAmountValue stores the raw amount.
func (b *Builder) SetAmountValue(v string) {
	b.amountValue = v
}

// Type returns the selected filter family.
func (b *Builder) Type() model.FilterType { return b.filterType }

// DateTab returns the selected date entry mode.
func (b *Builder) DateTab() DateTab { return b.dateTab }

// Preset returns the selected preset.
func (b *Builder) Preset() preset.Preset { return b.preset }

// DateOperator returns the selected custom date operator.
func (b *Builder) DateOperator() model.Operator { return b.dateOperator }

// DateValue returns the raw custom date.
func (b *Builder) DateValue() string { return b.dateValue }

// AmountOperator returns the selected amount operator.
func (b *Builder) AmountOperator() model.Operator { return b.amountOperator }

// AmountValue returns the raw amount.
func (b *Builder) AmountValue() string { return b.amountValue }

// CanCommit reports whether Commit would succeed.
func (b *Builder) CanCommit() bool {
	if !b.open {
		return false
	}
	switch b.filterType {
	case model.FilterAmount:
		return strings.TrimSpace(b.amountValue) != ""
	default:
		return b.dateTab == DateTabPreset || strings.TrimSpace(b.dateValue) != ""
	}
}

// PreviewLabel returns the label the pending filter would be committed with.
func (b *Builder) PreviewLabel(now time.Time) string {
	switch {
	case b.filterType == model.FilterAmount:
		return amountLabel(b.amountOperator, b.amountValue)
	case b.dateTab == DateTabPreset:
		_, label := preset.Resolve(b.preset, now)
		return label
	default:
		return dateLabel(b.dateOperator, b.dateValue)
	}
}

// Commit freezes the pending choices into a Filter with a fresh id, closes
// the builder and clears the typed values. Preset and operator selections are
// kept for the next filter. On error the builder is left untouched.
func (b *Builder) Commit(now time.Time) (model.Filter, error) {
	if !b.open {
		return model.Filter{}, ErrBuilderClosed
	}
	if !b.CanCommit() {
		return model.Filter{}, ErrCommitBlocked
	}

	var f model.Filter
	switch {
	case b.filterType == model.FilterAmount:
		f = model.Filter{
			Type:     model.FilterAmount,
			Operator: b.amountOperator,
			Value:    b.amountValue,
			Display:  amountLabel(b.amountOperator, b.amountValue),
		}
	case b.dateTab == DateTabPreset:
		start, label := preset.Resolve(b.preset, now)
		f = model.Filter{
			Type:     model.FilterDate,
			Operator: model.OpAfter,
			Value:    preset.FormatISODate(start),
			Display:  label,
			Preset:   string(b.preset),
		}
	default:
		f = model.Filter{
			Type:     model.FilterDate,
			Operator: b.dateOperator,
			Value:    b.dateValue,
			Display:  dateLabel(b.dateOperator, b.dateValue),
		}
	}
	f.ID = b.ids.NextID()

	b.Close()
	b.dateValue = ""
	b.amountValue = ""

	return f, nil
}

func dateLabel(op model.Operator, value string) string {
	word := "After"
	if op == model.OpBefore {
		word = "Before"
	}
	return fmt.Sprintf("%s %s", word, value)
}

func amountLabel(op model.Operator, value string) string {
	if value == "" {
		return fmt.Sprintf("Amount %s 0", op)
	}
	return fmt.Sprintf("Amount %s %s XLM", op, value)
}
