package http

import (
	"fmt"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func createWorkItem[K workitem.Kind](
	s *Server,
	ctx echo.Context,
	handler commands.CreateWorkItemCommandHandler[K],
) error {
	var body servers.NewWorkItem
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	clientID, err := toKernelUUID("client id", body.ClientId)
	if err != nil {
		return s.fail(ctx, err)
	}
	serviceID, err := toKernelUUID("service id", body.ServiceId)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkItemCommand[K](id, clientID, serviceID, body.ChargedAmount)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

func getWorkItem[K workitem.Kind](
	s *Server,
	ctx echo.Context,
	handler queries.GetWorkItemQueryHandler[K],
	id servers.Id,
) error {
	itemID, err := toKernelUUID(workitem.KindName[K]()+" id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetWorkItemQuery[K](itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := handler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workItemFromView(view))
}

func getOpenWorkItems[K workitem.Kind](
	s *Server,
	ctx echo.Context,
	handler queries.GetOpenWorkItemsQueryHandler[K],
	clientID, providerID *openapi_types.UUID,
) error {
	clientFilter, err := toOptionalKernelUUID("client id", clientID)
	if err != nil {
		return s.fail(ctx, err)
	}
	providerFilter, err := toOptionalKernelUUID("provider id", providerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOpenWorkItemsQuery[K](clientFilter, providerFilter)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := handler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.WorkItem, len(views))
	for i, view := range views {
		response[i] = workItemFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

func updateWorkItemStatus[K workitem.Kind](
	s *Server,
	ctx echo.Context,
	handler commands.UpdateWorkItemStatusCommandHandler[K],
	id servers.Id,
) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	itemID, err := toKernelUUID(workitem.KindName[K]()+" id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := workitem.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateWorkItemStatusCommand[K](itemID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := handler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workItemFromDomain(item))
}

func workItemFromView(view queries.WorkItemView) servers.WorkItem {
	return servers.WorkItem{
		Id:            view.ID.Bytes(),
		ClientId:      view.ClientID.Bytes(),
		ProviderId:    view.ProviderID.Bytes(),
		ServiceId:     view.ServiceID.Bytes(),
		ChargedAmount: view.ChargedAmount.StringFixed(kernel.MoneyScale),
		Status:        servers.WorkItemStatus(view.Status.String()),
		CreatedAt:     view.CreatedAt,
		CompletedAt:   view.CompletedAt,
	}
}

func workItemFromDomain[K workitem.Kind](item *workitem.WorkItem[K]) servers.WorkItem {
	return servers.WorkItem{
		Id:            item.ID().Bytes(),
		ClientId:      item.ClientID().Bytes(),
		ProviderId:    item.ProviderID().Bytes(),
		ServiceId:     item.ServiceID().Bytes(),
		ChargedAmount: item.ChargedAmount().String(),
		Status:        servers.WorkItemStatus(item.Status().String()),
		CreatedAt:     item.CreatedAt(),
		CompletedAt:   item.CompletedAt(),
	}
}

func toKernelUUID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%s: %w", param, err)
	}
	return u, nil
}

func toOptionalKernelUUID(param string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := toKernelUUID(param, *id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
