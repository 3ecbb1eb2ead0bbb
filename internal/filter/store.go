package filter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

// ErrDuplicateID is returned when a filter id is already present in the store.
var ErrDuplicateID = errors.New("duplicate filter id")

// Store is the ordered set of committed filters. Insertion order is the
// display and evaluation order.
type Store struct {
	filters []model.Filter
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends f to the end of the store.
func (s *Store) Add(f model.Filter) error {
	if f.ID == "" {
		return fmt.Errorf("%w: empty id", ErrDuplicateID)
	}
	if s.Contains(f.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, f.ID)
	}
	s.filters = append(s.filters, f)
	return nil
}

// Remove deletes the filter with the given id and reports whether one was found.
func (s *Store) Remove(id string) bool {
	for i, f := range s.filters {
		if f.ID == id {
			s.filters = slices.Delete(s.filters, i, i+1)
			return true
		}
	}
	return false
}

// Clear removes every filter and reports whether the store changed.
func (s *Store) Clear() bool {
	if len(s.filters) == 0 {
		return false
	}
	s.filters = nil
	return true
}

// Contains returns true if a filter with id is present.
func (s *Store) Contains(id string) bool {
	for _, f := range s.filters {
		if f.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of filters.
func (s *Store) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in insertion order.
func (s *Store) Filters() []model.Filter {
	out := make([]model.Filter, len(s.filters))
	copy(out, s.filters)
	return out
}
