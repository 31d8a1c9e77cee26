package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRating handles POST /api/v1/ratings.
func (s *Server) CreateRating(ctx echo.Context) error {
	var body servers.NewRating
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	orderID, err := toKernelUUID("order id", body.OrderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	clientID, err := toKernelUUID("client id", body.ClientId)
	if err != nil {
		return s.fail(ctx, err)
	}
	providerID, err := toKernelUUID("provider id", body.ProviderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateRatingCommand(kernel.NewUUID(), orderID, clientID, providerID, body.Score, body.Comment)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.h.CreateRating.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ratingFromDomain(r))
}

// UpdateRating handles PATCH /api/v1/ratings/{id}.
func (s *Server) UpdateRating(ctx echo.Context, id servers.Id) error {
	var body servers.RatingUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidRequest(ctx, "invalid request body")
	}

	ratingID, err := toKernelUUID("rating id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateRatingCommand(ratingID, body.Score, body.Comment)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.h.UpdateRating.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ratingFromDomain(r))
}

// DeleteRating handles DELETE /api/v1/ratings/{id}.
func (s *Server) DeleteRating(ctx echo.Context, id servers.Id) error {
	ratingID, err := toKernelUUID("rating id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRatingCommand(ratingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteRating.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProviderRatings handles GET /api/v1/providers/{id}/ratings.
func (s *Server) GetProviderRatings(ctx echo.Context, id servers.Id) error {
	providerID, err := toKernelUUID("provider id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProviderRatingsQuery(providerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetProviderRatings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRatingResponses(views))
}

// GetClientRatings handles GET /api/v1/clients/{id}/ratings.
func (s *Server) GetClientRatings(ctx echo.Context, id servers.Id) error {
	clientID, err := toKernelUUID("client id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetClientRatingsQuery(clientID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.h.GetClientRatings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRatingResponses(views))
}

// GetOrderRating handles GET /api/v1/orders/{id}/rating.
func (s *Server) GetOrderRating(ctx echo.Context, id servers.Id) error {
	orderID, err := toKernelUUID("order id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRatingByOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrderRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRatingResponse(view))
}

func toRatingResponses(views []queries.RatingView) []servers.Rating {
	response := make([]servers.Rating, len(views))
	for i, v := range views {
		response[i] = toRatingResponse(v)
	}
	return response
}

func toRatingResponse(v queries.RatingView) servers.Rating {
	return servers.Rating{
		Id:         v.ID.Bytes(),
		OrderId:    v.OrderID.Bytes(),
		ClientId:   v.ClientID.Bytes(),
		ProviderId: v.ProviderID.Bytes(),
		Score:      v.Score,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// GetProviderRatingSummary handles GET /api/v1/providers/{id}/rating-summary.
func (s *Server) GetProviderRatingSummary(ctx echo.Context, id servers.Id) error {
	providerID, err := toKernelUUID("provider id", id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProviderRatingSummaryQuery(providerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetProviderRatingSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	distribution := make(map[string]int, len(view.Distribution))
	for score, count := range view.Distribution {
		distribution[strconv.Itoa(score)] = count
	}

	return ctx.JSON(http.StatusOK, servers.RatingSummary{
		ProviderId:   view.ProviderID.Bytes(),
		Count:        view.Count,
		Average:      view.Average.StringFixed(2),
		Distribution: distribution,
	})
}

func ratingFromDomain(r *rating.Rating) servers.Rating {
	var comment *string
	if c := r.Comment(); c != nil {
		s := c.String()
		comment = &s
	}

	return servers.Rating{
		Id:         r.ID().Bytes(),
		OrderId:    r.OrderID().Bytes(),
		ClientId:   r.ClientID().Bytes(),
		ProviderId: r.ProviderID().Bytes(),
		Score:      r.Score().Int(),
		Comment:    comment,
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}
