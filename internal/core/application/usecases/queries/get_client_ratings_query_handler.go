package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetClientRatingsQueryHandler struct {
	db *gorm.DB
}

func NewGetClientRatingsQueryHandler(db *gorm.DB) GetClientRatingsQueryHandler {
	return GetClientRatingsQueryHandler{db: db}
}

func (h GetClientRatingsQueryHandler) Handle(
	ctx context.Context,
	query GetClientRatingsQuery,
) ([]RatingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Table("ratings").
		Select(ratingColumns).
		Where("client_id = ?", query.ClientID().Bytes()).
		Order("created_at DESC, id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRatingViews(rows)
}
