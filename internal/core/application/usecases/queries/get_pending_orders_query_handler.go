package queries

import (
	"context"
)

// OccupancyReader is the read-only slice of ports.OrderBuffer the query needs.
type OccupancyReader interface {
	PendingCount() int
	Capacity() int
	IsClosed() bool
}

// GetPendingOrdersQueryHandler never blocks on the buffer lock.
type GetPendingOrdersQueryHandler struct {
	buffer OccupancyReader
}

func NewGetPendingOrdersQueryHandler(buffer OccupancyReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{buffer: buffer}
}

func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) (GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	return GetPendingOrdersQueryResponse{
		Pending:  h.buffer.PendingCount(),
		Capacity: h.buffer.Capacity(),
		Closed:   h.buffer.IsClosed(),
	}, nil
}
