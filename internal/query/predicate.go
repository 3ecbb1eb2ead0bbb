package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

// ErrUnparseable is returned when an amount or date cannot be read.
var ErrUnparseable = errors.New("unparseable value")

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MatchesAll reports whether inv satisfies every filter.
func MatchesAll(inv model.Invoice, filters []model.Filter) bool {
	for _, f := range filters {
		if !Matches(inv, f) {
			return false
		}
	}
	return true
}

// Matches reports whether inv satisfies a single filter. Values that cannot be
// parsed never match.
func Matches(inv model.Invoice, f model.Filter) bool {
	switch f.Type {
	case model.FilterDate:
		return matchesDate(inv.IssueDate, f)
	case model.FilterAmount:
		return matchesAmount(inv.Amount, f)
	default:
		return true
	}
}

func matchesDate(issueDate string, f model.Filter) bool {
	issued, err := ParseDate(issueDate)
	if err != nil {
		return false
	}
	bound, err := ParseDate(f.Value)
	if err != nil {
		return false
	}

	if f.Operator == model.OpAfter {
		return !issued.Before(bound)
	}
	return !issued.After(bound)
}

func matchesAmount(amount string, f model.Filter) bool {
	switch f.Operator {
	case model.OpGreater, model.OpGreaterEqual, model.OpEqual, model.OpLessEqual, model.OpLess:
	default:
		return true
	}

	have, err := ParseAmount(amount)
	if err != nil {
		return false
	}
	want, err := ParseAmount(f.Value)
	if err != nil {
		return false
	}

	switch f.Operator {
	case model.OpGreater:
		return have.GreaterThan(want)
	case model.OpGreaterEqual:
		return have.GreaterThanOrEqual(want)
	case model.OpEqual:
		return have.Equal(want)
	case model.OpLessEqual:
		return have.LessThanOrEqual(want)
	default:
		return have.LessThan(want)
	}
}

// ParseAmount reads the decimal in a currency string such as "$1,234.56 XLM"
// by dropping every character other than digits, '.' and '-'.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: amount %q", ErrUnparseable, s)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", ErrUnparseable, s, err)
	}
	return d, nil
}

// ParseDate reads an ISO-8601 calendar date, with or without a time part,
// and keeps the calendar day as written in the input's own offset. The result
// is midnight UTC on that day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrUnparseable, s)
}
