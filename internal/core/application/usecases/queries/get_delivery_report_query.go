package queries

import (
	"errors"
	"time"

	"speedfast/internal/pkg/guard"
)

var ErrGetDeliveryReportQueryIsNotConstructed = errors.New(
	"GetDeliveryReportQuery must be created via NewGetDeliveryReportQuery constructor",
)

// GetDeliveryReportQuery reads the delivery ledger.
//
// Example:
//
//	query := NewGetDeliveryReportQuery()
//	handler := NewGetDeliveryReportQueryHandler(ledger)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//	for _, d := range report.Deliveries {
//	    fmt.Println(d.Summary)
//	}
type GetDeliveryReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryReportQuery() GetDeliveryReportQuery {
	return GetDeliveryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReportQueryIsNotConstructed)
}

// DeliveryView is one ledger entry with enums rendered as text.
type DeliveryView struct {
	OrderID    int64
	Kind       string
	Priority   string
	Status     string
	Courier    string
	Summary    string
	RecordedAt time.Time
}

// GetDeliveryReportQueryResponse lists deliveries in the order they were recorded.
type GetDeliveryReportQueryResponse struct {
	Deliveries []DeliveryView
	Total      int
}
