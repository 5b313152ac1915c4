package queries

import (
	"context"
	"slices"
	"strings"

	"speedfast/internal/core/domain/model/courier"
	"speedfast/internal/core/ports"
)

// GetAllCouriersQueryHandler joins the fixed courier roster with the ledger.
// Results are sorted by name.
type GetAllCouriersQueryHandler struct {
	couriers []*courier.Courier
	ledger   ports.DeliveryLedger
}

func NewGetAllCouriersQueryHandler(couriers []*courier.Courier, ledger ports.DeliveryLedger) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{
		couriers: slices.Clone(couriers),
		ledger:   ledger,
	}
}

func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report, err := h.ledger.Report(ctx)
	if err != nil {
		return nil, err
	}

	delivered := make(map[string]int, len(h.couriers))
	for _, r := range report.Records {
		delivered[r.Courier]++
	}

	couriers := make([]GetAllCouriersQueryResponse, 0, len(h.couriers))
	for _, c := range h.couriers {
		couriers = append(couriers, GetAllCouriersQueryResponse{
			ID:        c.ID(),
			Name:      c.Name(),
			Delivered: delivered[c.Name()],
		})
	}

	slices.SortFunc(couriers, func(a, b GetAllCouriersQueryResponse) int {
		return strings.Compare(a.Name, b.Name)
	})

	return couriers, nil
}
