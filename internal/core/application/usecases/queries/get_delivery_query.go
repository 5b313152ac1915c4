package queries

import (
	"errors"
	"fmt"

	"speedfast/internal/pkg/errs"
	"speedfast/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery looks up one recorded delivery by order id.
type GetDeliveryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(orderID int64) (GetDeliveryQuery, error) {
	if orderID <= 0 {
		return GetDeliveryQuery{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	return GetDeliveryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) OrderID() int64 {
	return q.orderID
}
