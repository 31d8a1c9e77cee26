package queries

import (
	"context"

	"marketplace/internal/core/domain/model/workitem"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetOpenWorkItemsQueryHandler[K workitem.Kind] struct {
	db *gorm.DB
}

func NewGetOpenWorkItemsQueryHandler[K workitem.Kind](db *gorm.DB) GetOpenWorkItemsQueryHandler[K] {
	return GetOpenWorkItemsQueryHandler[K]{db: db}
}

// Handle returns open items oldest first.
func (h GetOpenWorkItemsQueryHandler[K]) Handle(
	ctx context.Context,
	query GetOpenWorkItemsQuery[K],
) ([]WorkItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open := pq.StringArray{workitem.Pending.String(), workitem.InProgress.String()}

	tx := h.db.WithContext(ctx).
		Table(tableFor[K]()).
		Select(workItemColumns).
		Where("status = ANY(?)", open)
	if id := query.ClientID(); id != nil {
		tx = tx.Where("client_id = ?", id.Bytes())
	}
	if id := query.ProviderID(); id != nil {
		tx = tx.Where("provider_id = ?", id.Bytes())
	}

	rows, err := tx.Order("created_at, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]WorkItemView, 0)
	for rows.Next() {
		view, scanErr := scanWorkItemView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
