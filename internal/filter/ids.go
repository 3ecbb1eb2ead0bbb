// Package filter builds and holds the compound filters applied to the invoice list.
package filter

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out filter identifiers that are unique within a session.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NextID returns a fresh UUID string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}

// SequenceGenerator issues monotonically increasing identifiers with a prefix.
// Tests use it to get predictable ids.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a generator producing prefix-1, prefix-2, ...
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

// NextID returns the next identifier in the sequence.
func (g *SequenceGenerator) NextID() string {
	return fmt.Sprintf("%s-%d", g.Prefix, g.next.Add(1))
}
