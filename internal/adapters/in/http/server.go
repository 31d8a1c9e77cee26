package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handlers groups the use cases the HTTP adapter exposes.
type Handlers struct {
	CreateOffering       commands.CreateOfferingCommandHandler
	ChangeOfferingStatus commands.ChangeOfferingStatusCommandHandler

	CreateOrder          commands.CreateWorkItemCommandHandler[workitem.OrderKind]
	CreateServiceRequest commands.CreateWorkItemCommandHandler[workitem.ServiceRequestKind]

	UpdateOrderStatus          commands.UpdateWorkItemStatusCommandHandler[workitem.OrderKind]
	UpdateServiceRequestStatus commands.UpdateWorkItemStatusCommandHandler[workitem.ServiceRequestKind]

	CreateRating commands.CreateRatingCommandHandler
	UpdateRating commands.UpdateRatingCommandHandler
	DeleteRating commands.DeleteRatingCommandHandler

	GetOrder          queries.GetWorkItemQueryHandler[workitem.OrderKind]
	GetServiceRequest queries.GetWorkItemQueryHandler[workitem.ServiceRequestKind]

	GetOpenOrders          queries.GetOpenWorkItemsQueryHandler[workitem.OrderKind]
	GetOpenServiceRequests queries.GetOpenWorkItemsQueryHandler[workitem.ServiceRequestKind]

	GetProviderRatingSummary queries.GetProviderRatingSummaryQueryHandler
	GetProviderRatings       queries.GetProviderRatingsQueryHandler
	GetClientRatings         queries.GetClientRatingsQueryHandler
	GetOrderRating           queries.GetRatingByOrderQueryHandler
}

// Server implements servers.ServerInterface on top of the application handlers.
type Server struct {
	h   Handlers
	log zerolog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, log zerolog.Logger) *Server {
	return &Server{
		h:   handlers,
		log: log.With().Str("component", "http").Logger(),
	}
}

// CreateOffering handles POST /api/v1/offerings.
func (s *Server) CreateOffering(ctx echo.Context) error {
	var body servers.NewOffering
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	providerID, err := toKernelUUID("provider id", body.ProviderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOfferingCommand(id, providerID, body.Title, body.Description, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOffering.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// ChangeOfferingStatus handles PATCH /api/v1/offerings/{id}/status.
func (s *Server) ChangeOfferingStatus(ctx echo.Context, id servers.Id) error {
	var body servers.OfferingStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	offeringID, err := toKernelUUID("offering id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := catalog.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOfferingStatusCommand(offeringID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.ChangeOfferingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	return createWorkItem(s, ctx, s.h.CreateOrder)
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context, params servers.GetOpenOrdersParams) error {
	return getOpenWorkItems(s, ctx, s.h.GetOpenOrders, params.ClientId, params.ProviderId)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.Id) error {
	return getWorkItem(s, ctx, s.h.GetOrder, id)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.Id) error {
	return updateWorkItemStatus(s, ctx, s.h.UpdateOrderStatus, id)
}

// CreateServiceRequest handles POST /api/v1/service-requests.
func (s *Server) CreateServiceRequest(ctx echo.Context) error {
	return createWorkItem(s, ctx, s.h.CreateServiceRequest)
}

// GetOpenServiceRequests handles GET /api/v1/service-requests/open.
func (s *Server) GetOpenServiceRequests(ctx echo.Context, params servers.GetOpenServiceRequestsParams) error {
	return getOpenWorkItems(s, ctx, s.h.GetOpenServiceRequests, params.ClientId, params.ProviderId)
}

// GetServiceRequest handles GET /api/v1/service-requests/{id}.
func (s *Server) GetServiceRequest(ctx echo.Context, id servers.Id) error {
	return getWorkItem(s, ctx, s.h.GetServiceRequest, id)
}

// UpdateServiceRequestStatus handles PATCH /api/v1/service-requests/{id}/status.
func (s *Server) UpdateServiceRequestStatus(ctx echo.Context, id servers.Id) error {
	return updateWorkItemStatus(s, ctx, s.h.UpdateServiceRequestStatus, id)
}

// fail writes the error response for err. Unexpected errors are logged.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := ErrorResponse(err)
	if status == http.StatusInternalServerError {
		s.log.Error().
			Err(err).
			Str("method", ctx.Request().Method).
			Str("path", ctx.Path()).
			Msg("request failed")
	}
	return ctx.JSON(status, body)
}

func invalidRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
		Kind:    KindInvalidRequest,
	})
}
