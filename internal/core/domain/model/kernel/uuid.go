package kernel

import (
	"speedfast/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not built through NewUUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID is an immutable identifier wrapping github.com/google/uuid.
//
// The zero value is invalid.
//
// Example usage:
//
//	courierID := kernel.NewUUID()
//	c, err := courier.NewCourier(courierID, "Cecilia Matamala")
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// Bytes exposes the underlying google UUID for transport models.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) String() string {
	return u.id.String()
}

// Short returns the first block of the UUID, enough to tell couriers apart in logs.
func (u UUID) Short() string {
	return u.id.String()[:8]
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
