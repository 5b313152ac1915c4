package order

import (
	"errors"
	"fmt"
	"math"
)

var ErrOrderIsNotAssigned = errors.New("order has no courier assigned")

// ProcessingReport is the outcome of the fixed five-step processing sequence.
type ProcessingReport struct {
	OrderID          int64
	Header           string
	Checks           []string
	EstimatedMinutes int
	Summary          string
}

// Process runs header, validation, assignment confirmation, delivery-time
// estimate and summary, in that order. It is synchronous, deterministic and
// does not mutate the order. The order must already carry a courier.
func (o *Order) Process() (ProcessingReport, error) {
	if err := o.Validate(); err != nil {
		return ProcessingReport{}, err
	}

	report := ProcessingReport{
		OrderID: o.id,
		Header:  fmt.Sprintf("[%s] order #%d (%s)", o.kind, o.id, o.priority),
	}

	if o.courier == "" {
		return ProcessingReport{}, ErrOrderIsNotAssigned
	}
	if err := o.status.Validate(); err != nil {
		return ProcessingReport{}, err
	}

	report.Checks = append(report.Checks, o.kind.assignmentChecks()...)

	report.EstimatedMinutes = int(math.Round(o.EstimatedMinutes()))

	report.Summary = fmt.Sprintf("order #%d to %s, %.1f km, courier %s, estimated %d minutes",
		o.id, o.address, o.distanceKm, o.courier, report.EstimatedMinutes)

	return report, nil
}
