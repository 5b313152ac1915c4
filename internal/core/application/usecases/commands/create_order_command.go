package commands

import (
	"errors"
	"fmt"
	"strings"

	"speedfast/internal/core/domain/model/order"
	"speedfast/internal/pkg/errs"
	"speedfast/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// CreateOrderCommand represents a request to stage a new order in the
// buffer. The order id is not part of the command: the handler allocates
// it from the shared sequence.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Parcel, order.Low, "Av Paicavi 1250", 6, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(buffer, seq)
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	kind       order.Kind
	priority   order.Priority
	address    string
	distanceKm float64
	weightKg   float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field at once and returns the
// joined violations.
func NewCreateOrderCommand(
	kind order.Kind,
	priority order.Priority,
	address string,
	distanceKm float64,
	weightKg float64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setPriority(priority),
		command.setAddress(address),
		command.setDistance(distanceKm),
		command.setWeight(weightKg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Kind() order.Kind {
	return c.kind
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c CreateOrderCommand) DistanceKm() float64 {
	return c.distanceKm
}

// WeightKg is zero for kinds that do not carry a weight.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%.2f is not greater than 0", distanceKm))
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateOrderCommand) setWeight(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%.2f is negative", weightKg))
	}

	c.weightKg = weightKg
	return nil
}
