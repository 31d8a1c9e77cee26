package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
)

// RatingRepository persists ratings. Storage enforces at most one rating per
// order; a second Add for the same order fails with rating.ErrOrderAlreadyRated.
type RatingRepository interface {
	Add(ctx context.Context, r *rating.Rating) error
	Update(ctx context.Context, r *rating.Rating) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error)

	// GetByOrderID returns errs.ErrObjectNotFound when the order has no rating.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*rating.Rating, error)
}
