package queries

import (
	"errors"

	"speedfast/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery reads the staging buffer occupancy.
//
// Example:
//
//	query := NewGetPendingOrdersQuery()
//	handler := NewGetPendingOrdersQueryHandler(buffer)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d/%d orders staged\n", resp.Pending, resp.Capacity)
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is an advisory snapshot: Pending may be
// stale by the time it is read, but never exceeds Capacity. Closed means
// no more orders will be staged.
type GetPendingOrdersQueryResponse struct {
	Pending  int
	Capacity int
	Closed   bool
}
