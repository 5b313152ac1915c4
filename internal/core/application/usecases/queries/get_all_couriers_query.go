package queries

import (
	"errors"

	"speedfast/internal/core/domain/model/kernel"
	"speedfast/internal/pkg/guard"
)

var (
	ErrGetAllCouriersQueryIsNotConstructed = errors.New(
		"GetAllCouriersQuery must be created via NewGetAllCouriersQuery constructor",
	)
)

// GetAllCouriersQuery lists the couriers of the worker pool together with
// how many deliveries each has recorded so far.
//
// Example:
//
//	query := NewGetAllCouriersQuery()
//	handler := NewGetAllCouriersQueryHandler(couriers, ledger)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, c := range resp {
//	    fmt.Printf("%s delivered %d orders\n", c.Name, c.Delivered)
//	}
type GetAllCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCouriersQuery() GetAllCouriersQuery {
	return GetAllCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCouriersQueryIsNotConstructed)
}

type GetAllCouriersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Delivered int
}
