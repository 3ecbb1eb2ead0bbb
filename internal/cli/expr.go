package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

// ErrBadExpression is returned for filter expressions that cannot be read.
var ErrBadExpression = errors.New("invalid filter expression")

// FilterExpr is a parsed --filter flag value.
type FilterExpr struct {
	Type     model.FilterType
	DateTab  filter.DateTab
	Operator model.Operator
	Preset   preset.Preset
	Value    string
}

// amount operators ordered so that two-character operators match first.
var exprAmountOperators = []model.Operator{
	model.OpGreaterEqual, model.OpLessEqual, model.OpGreater, model.OpLess, model.OpEqual,
}

// ParseFilterExpr reads one of:
//
//	amount>75  amount>=75  amount=75  amount<=75  amount<75
//	after:2024-01-01  before:2024-01-01
//	preset:last7days
func ParseFilterExpr(expr string) (FilterExpr, error) {
	expr = strings.TrimSpace(expr)

	if rest, ok := strings.CutPrefix(expr, "amount"); ok {
		rest = strings.TrimSpace(rest)
		for _, op := range exprAmountOperators {
			if value, found := strings.CutPrefix(rest, string(op)); found {
				value = strings.TrimSpace(value)
				if value == "" {
					return FilterExpr{}, fmt.Errorf("%w: %q has no amount", ErrBadExpression, expr)
				}
				return FilterExpr{Type: model.FilterAmount, Operator: op, Value: value}, nil
			}
		}
		return FilterExpr{}, fmt.Errorf("%w: %q has no comparison operator", ErrBadExpression, expr)
	}

	kind, value, ok := strings.Cut(expr, ":")
	if !ok {
		return FilterExpr{}, fmt.Errorf("%w: %q", ErrBadExpression, expr)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return FilterExpr{}, fmt.Errorf("%w: %q has no value", ErrBadExpression, expr)
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "after":
		return FilterExpr{Type: model.FilterDate, DateTab: filter.DateTabCustom, Operator: model.OpAfter, Value: value}, nil
	case "before":
		return FilterExpr{Type: model.FilterDate, DateTab: filter.DateTabCustom, Operator: model.OpBefore, Value: value}, nil
	case "preset":
		p := preset.Preset(value)
		if !p.IsKnown() {
			return FilterExpr{}, fmt.Errorf("%w: unknown preset %q", ErrBadExpression, value)
		}
		return FilterExpr{Type: model.FilterDate, DateTab: filter.DateTabPreset, Preset: p}, nil
	default:
		return FilterExpr{}, fmt.Errorf("%w: unknown filter kind %q", ErrBadExpression, kind)
	}
}

// Apply drives the session's filter builder with e and commits it.
func (e FilterExpr) Apply(s *session.Session) (model.Filter, error) {
	s.OpenFilterBuilder()
	s.SetFilterType(e.Type)

	switch e.Type {
	case model.FilterAmount:
		s.SetAmountOperator(e.Operator)
		s.SetAmountValue(e.Value)
	case model.FilterDate:
		s.SetDateTab(e.DateTab)
		if e.DateTab == filter.DateTabPreset {
			s.SetDatePreset(e.Preset)
		} else {
			s.SetDateOperator(e.Operator)
			s.SetDateValue(e.Value)
		}
	}

	f, err := s.CommitFilter()
	if err != nil {
		s.CloseFilterBuilder()
		return model.Filter{}, err
	}
	return f, nil
}
