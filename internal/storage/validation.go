package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/query"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrEmptySlice     = errors.New("slice cannot be empty")
	ErrInvalidInvoice = errors.New("invalid invoice")
)

var validate = validator.New()

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// ValidateInvoices checks every record and that ids are unique within the batch.
func ValidateInvoices(invoices []model.Invoice) error {
	if len(invoices) == 0 {
		return fmt.Errorf("%w: invoices", ErrEmptySlice)
	}

	seen := make(map[string]int, len(invoices))
	for i := range invoices {
		if err := ValidateInvoice(invoices[i]); err != nil {
			return fmt.Errorf("invoice at index %d: %w", i, err)
		}
		if first, ok := seen[invoices[i].ID]; ok {
			return fmt.Errorf("%w: id %q repeated at index %d and %d", ErrInvalidInvoice, invoices[i].ID, first, i)
		}
		seen[invoices[i].ID] = i
	}
	return nil
}

// ValidateInvoice checks that a record has every field, a known status, a
// parseable amount and ISO dates.
func ValidateInvoice(inv model.Invoice) error {
	if err := validate.Struct(inv); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidInvoice, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInvoice, err)
	}
	if _, err := query.ParseAmount(inv.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInvoice, err)
	}
	if _, err := query.ParseDate(inv.IssueDate); err != nil {
		return fmt.Errorf("%w: issue date: %v", ErrInvalidInvoice, err)
	}
	if _, err := query.ParseDate(inv.DueDate); err != nil {
		return fmt.Errorf("%w: due date: %v", ErrInvalidInvoice, err)
	}
	return nil
}
