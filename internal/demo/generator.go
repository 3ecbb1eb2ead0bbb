// Package demo produces realistic fake invoices for seeding and demos.
package demo

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
)

// Options controls invoice generation.
type Options struct {
	Now       time.Time
	Count     int
	Seed      uint64
	MinAmount float64
	MaxAmount float64
	// HistoryDays is how far back issue dates may go.
	HistoryDays int
}

// DefaultOptions returns options for n invoices issued over the last 120 days.
func DefaultOptions(n int) Options {
	return Options{
		Now:         time.Now(),
		Count:       n,
		MinAmount:   5,
		MaxAmount:   5000,
		HistoryDays: 120,
	}
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a value the way invoice records carry it, e.g. "$1,234.56 XLM".
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("$%.2f XLM", v)
}

// Generate returns opts.Count invoices with sequential ids. The same seed and
// Now always yield the same invoices.
func Generate(opts Options) []model.Invoice {
	if opts.Count <= 0 {
		return nil
	}
	if opts.HistoryDays <= 0 {
		opts.HistoryDays = 120
	}
	if opts.MaxAmount <= opts.MinAmount {
		opts.MaxAmount = opts.MinAmount + 1000
	}

	faker := gofakeit.New(opts.Seed)
	start := opts.Now.AddDate(0, 0, -opts.HistoryDays)

	invoices := make([]model.Invoice, opts.Count)
	for i := range invoices {
		issued := faker.DateRange(start, opts.Now)
		due := issued.AddDate(0, 0, faker.RandomInt([]int{14, 30, 45, 60}))

		invoices[i] = model.Invoice{
			ID:        fmt.Sprintf("INV-%04d", i+1),
			Client:    faker.Company(),
			IssueDate: preset.FormatISODate(issued),
			DueDate:   preset.FormatISODate(due),
			Amount:    FormatAmount(faker.Price(opts.MinAmount, opts.MaxAmount)),
			Status:    pickStatus(faker, due, opts.Now),
		}
	}
	return invoices
}

func pickStatus(faker *gofakeit.Faker, due, now time.Time) model.Status {
	if faker.Float64Range(0, 1) < 0.55 {
		return model.StatusPaid
	}
	if due.Before(now) {
		return model.StatusOverdue
	}
	return model.StatusPending
}
