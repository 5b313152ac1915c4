package queries

import (
	"context"

	"speedfast/internal/core/ports"
)

// GetDeliveryQueryHandler returns errs.ObjectNotFoundError for orders that
// were never delivered.
type GetDeliveryQueryHandler struct {
	ledger ports.DeliveryLedger
}

func NewGetDeliveryQueryHandler(ledger ports.DeliveryLedger) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{ledger: ledger}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	record, err := h.ledger.Get(ctx, query.OrderID())
	if err != nil {
		return DeliveryView{}, err
	}

	return toDeliveryView(record), nil
}
