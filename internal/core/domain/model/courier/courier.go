package courier

import (
	"errors"
	"strings"

	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/pkg/errs"
	"speedfast/internal/pkg/guard"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier identifies one dispatch worker. It is immutable after
// construction and safe to share between goroutines.
type Courier struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewCourier validates the id and name.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) String() string {
	return c.name + " (" + c.id.Short() + ")"
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
