package tui

import "github.com/Veraticus/stellar-invoices/internal/model"

type invoicesLoadedMsg struct {
	err      error
	invoices []model.Invoice
}
