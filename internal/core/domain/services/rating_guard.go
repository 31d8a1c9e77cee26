package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
)

// RatingRequest is what a client submits to rate an order.
type RatingRequest struct {
	OrderID    kernel.UUID
	ClientID   kernel.UUID
	ProviderID kernel.UUID
	Score      int
	// Comment is optional; nil or empty means no comment.
	Comment *string
}

// RatingEligibilityGuard decides whether an order may be rated.
//
// Checks run in a fixed order and the first failure is returned:
//
//  1. the order exists
//  2. the order is Completed
//  3. the requester is the order's client
//  4. the order has no rating yet
//  5. the order has a completion date
//  6. the rating window has not elapsed
//  7. the provider matches the order's provider
type RatingEligibilityGuard struct {
	policy TemporalPolicy
}

func NewRatingEligibilityGuard(policy TemporalPolicy) RatingEligibilityGuard {
	return RatingEligibilityGuard{policy: policy}
}

// Validate runs the eligibility checks. order may be nil when it was not
// found; existing is the rating already stored for the order, if any.
// Failures are *rating.RejectionError values.
func (g RatingEligibilityGuard) Validate(
	order *workitem.Order,
	existing *rating.Rating,
	req RatingRequest,
	now time.Time,
) error {
	orderID := req.OrderID.String()

	if order == nil {
		return rating.NewRejectionError(rating.OrderNotFound, orderID, "")
	}

	if order.Status() != workitem.Completed {
		return rating.NewRejectionError(rating.OrderNotCompleted, orderID,
			fmt.Sprintf("status is %s", order.Status()))
	}

	if !req.ClientID.IsEqual(order.ClientID()) {
		return rating.NewRejectionError(rating.ClientNotAuthorized, orderID, "")
	}

	if existing != nil {
		return rating.NewRejectionError(rating.OrderAlreadyRated, orderID,
			fmt.Sprintf("rating %s", existing.ID()))
	}

	completedAt := order.CompletedAt()
	if completedAt == nil {
		return rating.NewRejectionError(rating.CompletionDateMissing, orderID, "")
	}

	if !g.policy.CanRate(*completedAt, now) {
		return rating.NewRejectionError(rating.RatingPeriodExpired, orderID,
			fmt.Sprintf("orders can only be rated within %s of completion", g.policy.RatingWindow()))
	}

	if !req.ProviderID.IsEqual(order.ProviderID()) {
		return rating.NewRejectionError(rating.ProviderIDMismatch, orderID, "")
	}

	return nil
}

// CreateRating validates eligibility and only then builds the rating. Score
// and comment are validated afterwards and reported together.
func (g RatingEligibilityGuard) CreateRating(
	order *workitem.Order,
	existing *rating.Rating,
	req RatingRequest,
	id kernel.UUID,
	now time.Time,
) (*rating.Rating, error) {
	if err := g.Validate(order, existing, req, now); err != nil {
		return nil, err
	}

	score, scoreErr := kernel.NewScore(req.Score)
	comment, commentErr := OptionalComment(req.Comment)
	if err := errors.Join(scoreErr, commentErr); err != nil {
		return nil, err
	}

	return rating.New(id, order.ID(), order.ClientID(), order.ProviderID(), score, comment, now)
}

// OptionalComment turns raw input into a comment; nil and "" yield no comment.
func OptionalComment(raw *string) (*kernel.Comment, error) {
	if raw == nil || *raw == "" {
		return nil, nil //nolint:nilnil // absence is a valid result
	}
	c, err := kernel.NewComment(*raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
