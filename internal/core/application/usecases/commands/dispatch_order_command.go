package commands

import (
	"errors"

	"speedfast/internal/core/domain/model/courier"
	"speedfast/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand asks one courier to take the most urgent staged
// order through to delivery.
//
// Example:
//
//	cmd, err := NewDispatchOrderCommand(c)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	courier *courier.Courier

	guard guard.ConstructorGuard
}

func NewDispatchOrderCommand(c *courier.Courier) (DispatchOrderCommand, error) {
	command := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourier(c); err != nil {
		return DispatchOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c DispatchOrderCommand) Courier() *courier.Courier {
	return c.courier
}

func (c *DispatchOrderCommand) setCourier(cr *courier.Courier) error {
	if err := cr.Validate(); err != nil {
		return err
	}

	c.courier = cr
	return nil
}
