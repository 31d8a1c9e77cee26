package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RatingSummaryView aggregates the ratings a provider received.
// Distribution always has one entry per star value.
type RatingSummaryView struct {
	ProviderID   kernel.UUID
	Count        int
	Average      decimal.Decimal
	Distribution map[int]int
}

type GetProviderRatingSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetProviderRatingSummaryQueryHandler(db *gorm.DB) GetProviderRatingSummaryQueryHandler {
	return GetProviderRatingSummaryQueryHandler{db: db}
}

// Handle returns a zero summary for a provider without ratings.
func (h GetProviderRatingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetProviderRatingSummaryQuery,
) (RatingSummaryView, error) {
	if err := query.Validate(); err != nil {
		return RatingSummaryView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT score, COUNT(*) FROM ratings WHERE provider_id = ? GROUP BY score",
		query.ProviderID().Bytes(),
	).Rows()
	if err != nil {
		return RatingSummaryView{}, err
	}
	defer rows.Close()

	view := RatingSummaryView{
		ProviderID:   query.ProviderID(),
		Average:      decimal.Zero,
		Distribution: make(map[int]int, kernel.MaxScore),
	}
	for s := kernel.MinScore; s <= kernel.MaxScore; s++ {
		view.Distribution[s] = 0
	}

	total := 0
	for rows.Next() {
		var score, count int
		if err = rows.Scan(&score, &count); err != nil {
			return RatingSummaryView{}, err
		}
		view.Distribution[score] = count
		view.Count += count
		total += score * count
	}

	if err = rows.Err(); err != nil {
		return RatingSummaryView{}, err
	}

	if view.Count > 0 {
		view.Average = decimal.NewFromInt(int64(total)).
			Div(decimal.NewFromInt(int64(view.Count))).
			Round(kernel.MoneyScale)
	}

	return view, nil
}
