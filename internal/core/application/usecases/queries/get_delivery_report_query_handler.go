package queries

import (
	"context"

	"speedfast/internal/core/ports"
)

type GetDeliveryReportQueryHandler struct {
	ledger ports.DeliveryLedger
}

func NewGetDeliveryReportQueryHandler(ledger ports.DeliveryLedger) GetDeliveryReportQueryHandler {
	return GetDeliveryReportQueryHandler{ledger: ledger}
}

func (h GetDeliveryReportQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReportQuery,
) (GetDeliveryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}

	report, err := h.ledger.Report(ctx)
	if err != nil {
		return GetDeliveryReportQueryResponse{}, err
	}

	deliveries := make([]DeliveryView, 0, len(report.Records))
	for _, r := range report.Records {
		deliveries = append(deliveries, toDeliveryView(r))
	}

	return GetDeliveryReportQueryResponse{
		Deliveries: deliveries,
		Total:      report.Total,
	}, nil
}

func toDeliveryView(r ports.DeliveryRecord) DeliveryView {
	return DeliveryView{
		OrderID:    r.OrderID,
		Kind:       r.Kind.String(),
		Priority:   r.Priority.String(),
		Status:     r.Status.String(),
		Courier:    r.Courier,
		Summary:    r.Summary,
		RecordedAt: r.RecordedAt,
	}
}
