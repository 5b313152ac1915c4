package order

import (
	"fmt"

	"speedfast/internal/pkg/errs"
)

// Priority is the urgency class of an order. Lower ordinals are served first.
// The zero value is invalid.
type Priority int

const (
	High Priority = iota + 1
	Medium
	Low
)

func (p Priority) Validate() error {
	if p < High || p > Low {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	switch p {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// MoreUrgentThan reports whether p must be withdrawn before other.
func (p Priority) MoreUrgentThan(other Priority) bool {
	return p < other
}
