package http

import (
	"errors"
	"net/http"

	"speedfast/internal/core/application/usecases/queries"
	"speedfast/internal/generated/servers"
	"speedfast/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server exposes read-only views of the running pipeline.
type Server struct {
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getDeliveryReportHandler queries.GetDeliveryReportQueryHandler
	getDeliveryHandler       queries.GetDeliveryQueryHandler
	getAllCouriersHandler    queries.GetAllCouriersQueryHandler
}

func NewServer(
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getDeliveryReportHandler queries.GetDeliveryReportQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		getPendingOrdersHandler:  getPendingOrdersHandler,
		getDeliveryReportHandler: getDeliveryReportHandler,
		getDeliveryHandler:       getDeliveryHandler,
		getAllCouriersHandler:    getAllCouriersHandler,
	}
}

// RegisterHandlers mounts the routes described by api/openapi.yml and the
// Swagger UI under /docs.
func (s *Server) RegisterHandlers(e *echo.Echo) error {
	if err := registerDocs(); err != nil {
		return err
	}

	servers.RegisterHandlers(e, s)
	e.GET("/docs/*", echoSwagger.WrapHandler)
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetPendingOrders handles GET /api/v1/orders/pending - staging buffer occupancy.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	resp, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read staging buffer",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Occupancy{
		Pending:  resp.Pending,
		Capacity: resp.Capacity,
		Closed:   resp.Closed,
	})
}

// GetDeliveries handles GET /api/v1/deliveries - the delivery report.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	resp, err := s.getDeliveryReportHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryReportQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build delivery report",
		})
	}

	deliveries := make([]servers.Delivery, len(resp.Deliveries))
	for i, d := range resp.Deliveries {
		deliveries[i] = toDelivery(d)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryReport{
		Deliveries: deliveries,
		Total:      resp.Total,
	})
}

// GetDelivery handles GET /api/v1/deliveries/{id} - one recorded delivery.
// A non-numeric id is rejected by the generated wrapper.
func (s *Server) GetDelivery(ctx echo.Context, id int64) error {
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	view, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Delivery not found",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery",
		})
	}

	return ctx.JSON(http.StatusOK, toDelivery(view))
}

// GetCouriers handles GET /api/v1/couriers - the courier roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve couriers",
		})
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:        c.ID.Bytes(),
			Name:      c.Name,
			Delivered: c.Delivered,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toDelivery(d queries.DeliveryView) servers.Delivery {
	return servers.Delivery{
		OrderId:    d.OrderID,
		Kind:       d.Kind,
		Priority:   d.Priority,
		Status:     d.Status,
		Courier:    d.Courier,
		Summary:    d.Summary,
		RecordedAt: d.RecordedAt,
	}
}
