package kernel

import (
	"sync/atomic"
)

// Sequence hands out unique, strictly increasing order numbers.
// It is shared by every producer so ids stay unique across concurrent generators.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first Next() is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next reserves and returns the next number.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
