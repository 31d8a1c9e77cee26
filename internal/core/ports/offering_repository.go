package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

// OfferingRepository persists catalog offerings.
type OfferingRepository interface {
	Add(ctx context.Context, o *catalog.Offering) error
	Update(ctx context.Context, o *catalog.Offering) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Offering, error)
}
