package layout

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator issues candidate ids for newly placed elements. The store
// rejects candidates that were ever present in its sequence and asks again, so
// generators only need to be collision-resistant, not globally aware.
type IDGenerator interface {
	NextID() string
}

// IDGeneratorFunc adapts a function into an IDGenerator.
type IDGeneratorFunc func() string

// NextID calls the underlying function.
func (fn IDGeneratorFunc) NextID() string {
	return fn()
}

// Sequence issues monotonically increasing ids: prefix1, prefix2, ...
type Sequence struct {
	prefix string
	next   uint64
}

// NewSequence returns a counter-backed generator.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NextID returns the next id in the sequence.
func (s *Sequence) NextID() string {
	s.next++
	return s.prefix + strconv.FormatUint(s.next, 10)
}

// Random issues UUIDv4-backed ids.
type Random struct {
	prefix string
}

// NewRandom returns a generator producing prefix + random UUID.
func NewRandom(prefix string) *Random {
	return &Random{prefix: prefix}
}

// NextID returns a fresh random id.
func (r *Random) NextID() string {
	return r.prefix + uuid.NewString()
}
