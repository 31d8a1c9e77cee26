package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRatingByOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetRatingByOrderQueryHandler(db *gorm.DB) GetRatingByOrderQueryHandler {
	return GetRatingByOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the order has not been rated.
func (h GetRatingByOrderQueryHandler) Handle(ctx context.Context, query GetRatingByOrderQuery) (RatingView, error) {
	if err := query.Validate(); err != nil {
		return RatingView{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Table("ratings").
		Select(ratingColumns).
		Where("order_id = ?", query.OrderID().Bytes()).
		Limit(1).
		Rows()
	if err != nil {
		return RatingView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RatingView{}, err
		}
		return RatingView{}, errs.NewObjectNotFoundError("rating", query.OrderID())
	}

	return scanRatingView(rows)
}
