package order

import (
	"errors"
	"fmt"
	"strings"

	"speedfast/internal/pkg/errs"
	"speedfast/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrAddressIsRequired     = errs.NewValueIsRequiredError("address")
	ErrCourierNameIsRequired = errs.NewValueIsRequiredError("courier name")
)

// Order is a unit of work moving through the dispatch pipeline.
//
// Order follows these invariants:
//   - id is positive and never changes
//   - kind and priority are fixed at construction
//   - distance is positive, weight is positive for parcels
//   - status only moves along the transitions defined by Status
//   - the courier is stamped once, when the order is dispatched
type Order struct {
	// id is the monotonically assigned order number
	id int64

	// kind selects the variant specific processing steps
	kind Kind

	// priority decides withdrawal order in the staging buffer
	priority Priority

	// status is the current lifecycle state
	status Status

	// courier is the name of the courier handling the order ("" while pending)
	courier string

	address    string
	distanceKm float64
	weightKg   float64

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order. All fields are validated and every
// violation is reported at once.
//
// Example:
//
//	o, err := order.NewOrder(seq.Next(), order.Parcel, order.Low, "Av Paicavi 1250", 6, 3)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id int64,
	kind Kind,
	priority Priority,
	address string,
	distanceKm float64,
	weightKg float64,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setKind(kind),
		o.setPriority(priority),
		o.setAddress(address),
		o.setDistance(distanceKm),
		o.setWeight(kind, weightKg),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created via NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Kind() Kind {
	return o.kind
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier name, or "" while unassigned.
func (o *Order) Courier() string {
	return o.courier
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// WeightKg is only meaningful for parcels.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// Dispatch moves a Pending order InTransit and stamps the courier.
func (o *Order) Dispatch(courierName string) error {
	if strings.TrimSpace(courierName) == "" {
		return ErrCourierNameIsRequired
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courier = courierName
	return nil
}

// Deliver marks an InTransit order Delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks a Pending or InTransit order Cancelled. The assigned
// courier, if any, is kept for the record.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// EstimatedMinutes is the kind-specific delivery-time estimate.
func (o *Order) EstimatedMinutes() float64 {
	return o.kind.estimateMinutes(o.distanceKm, o.weightKg)
}

// ShortSummary is the one line used by the delivery report.
func (o *Order) ShortSummary() string {
	return fmt.Sprintf("%s #%d - Courier: %s", o.kind, o.id, o.courier)
}

func (o *Order) String() string {
	return fmt.Sprintf("Order{id=%d, kind=%s, priority=%s, status=%s, address=%s, distance=%.1fkm}",
		o.id, o.kind, o.priority, o.status, o.address, o.distanceKm)
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	o.kind = kind
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%.2f is not greater than 0", distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}

func (o *Order) setWeight(kind Kind, weightKg float64) error {
	if weightKg < 0 || (kind.RequiresWeight() && weightKg == 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%.2f is not a valid weight for %s orders", weightKg, kind))
	}
	o.weightKg = weightKg
	return nil
}
