package query

import "github.com/Veraticus/stellar-invoices/internal/model"

// PageSize is the number of invoices shown per page.
const PageSize = 7

// Page is one slice of the filtered list plus the metadata needed to render
// the pagination footer.
type Page struct {
	Items       []model.Invoice
	Number      int
	StartEntry  int
	EndEntry    int
	TotalItems  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// TotalPages returns how many pages n items span.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Paginate returns page number page (1-based) of list. Pages past the end
// are empty; numbers below 1 are read as 1.
func Paginate(list []model.Invoice, page int) Page {
	if page < 1 {
		page = 1
	}
	total := len(list)
	totalPages := TotalPages(total)

	start := (page - 1) * PageSize
	end := min(page*PageSize, total)

	var items []model.Invoice
	if start < end {
		items = list[start:end:end]
	} else {
		items = []model.Invoice{}
	}

	return Page{
		Items:       items,
		Number:      page,
		StartEntry:  start + 1,
		EndEntry:    end,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     totalPages > 0 && page < totalPages,
	}
}
