package order

import (
	"fmt"

	"speedfast/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The order waits in the staging buffer.
	Pending

	// InTransit means a courier withdrew the order and is delivering it.
	InTransit

	// Delivered is terminal: the order reached its destination.
	Delivered

	// Cancelled is terminal: the order was abandoned before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Dispatch transitions Pending -> InTransit.
func (s Status) Dispatch() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, "dispatch")
	}
	return InTransit, nil
}

// Deliver transitions InTransit -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions Pending or InTransit -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
