package order

import (
	"fmt"
	"strings"

	"speedfast/internal/pkg/errs"
)

// Kind is the closed set of order variants. Each variant owns its
// assignment checks and its delivery-time formula.
type Kind int

const (
	Food Kind = iota + 1
	Express
	Parcel
)

// AllKinds lists every valid kind in declaration order.
func AllKinds() []Kind {
	return []Kind{Food, Express, Parcel}
}

// ParseKind maps a configuration selector ("food", "express", "parcel",
// case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food":
		return Food, nil
	case "express":
		return Express, nil
	case "parcel":
		return Parcel, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known order kind", s))
	}
}

func (k Kind) Validate() error {
	if k < Food || k > Parcel {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case Food:
		return "Food"
	case Express:
		return "Express"
	case Parcel:
		return "Parcel"
	default:
		return "Unknown"
	}
}

// DefaultPriority is the class the generator assigns to new orders of this kind.
func (k Kind) DefaultPriority() Priority {
	switch k {
	case Food:
		return High
	case Express:
		return Medium
	default:
		return Low
	}
}

// RequiresWeight reports whether the weight attribute is mandatory.
func (k Kind) RequiresWeight() bool {
	return k == Parcel
}

// assignmentChecks are the kind-specific confirmations run when a courier
// takes the order.
func (k Kind) assignmentChecks() []string {
	switch k {
	case Food:
		return []string{"assigning courier", "thermal bag verified"}
	case Express:
		return []string{"assigning courier", "nearest courier with immediate availability found"}
	case Parcel:
		return []string{"assigning courier", "weight and packaging validated"}
	default:
		return nil
	}
}

// estimateMinutes is a pure function of the order attributes.
func (k Kind) estimateMinutes(distanceKm float64, weightKg float64) float64 {
	switch k {
	case Food:
		return 15 + 2*distanceKm
	case Express:
		if distanceKm > 5 {
			return 15
		}
		return 10
	case Parcel:
		return 20 + 1.5*distanceKm + 0.5*weightKg
	default:
		return 0
	}
}
