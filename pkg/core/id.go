package core

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out node identifiers. Implementations must not repeat
// an ID within the lifetime of a document.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces time-ordered UUIDv7 identifiers.
type UUIDGenerator struct{}

// NewID returns a new UUIDv7, or a random UUIDv4 if the clock source fails.
func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceGenerator produces Prefix1, Prefix2, ... from a monotonic counter.
// It is safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a counter-based generator. An empty prefix defaults to "n".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "n"
	}
	return &SequenceGenerator{Prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (g *SequenceGenerator) NewID() string {
	return g.Prefix + strconv.FormatUint(g.next.Add(1), 10)
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }
