package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetProviderRatingsQueryHandler struct {
	db *gorm.DB
}

func NewGetProviderRatingsQueryHandler(db *gorm.DB) GetProviderRatingsQueryHandler {
	return GetProviderRatingsQueryHandler{db: db}
}

func (h GetProviderRatingsQueryHandler) Handle(
	ctx context.Context,
	query GetProviderRatingsQuery,
) ([]RatingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+ratingColumns+`
		FROM ratings WHERE provider_id = ? ORDER BY created_at DESC, id`,
		query.ProviderID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRatingViews(rows)
}
