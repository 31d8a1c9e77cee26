package queries

import (
	"context"

	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetWorkItemQueryHandler[K workitem.Kind] struct {
	db *gorm.DB
}

func NewGetWorkItemQueryHandler[K workitem.Kind](db *gorm.DB) GetWorkItemQueryHandler[K] {
	return GetWorkItemQueryHandler[K]{db: db}
}

// Handle returns errs.ErrObjectNotFound when no item has the id.
func (h GetWorkItemQueryHandler[K]) Handle(ctx context.Context, query GetWorkItemQuery[K]) (WorkItemView, error) {
	if err := query.Validate(); err != nil {
		return WorkItemView{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Table(tableFor[K]()).
		Select(workItemColumns).
		Where("id = ?", query.ID().Bytes()).
		Limit(1).
		Rows()
	if err != nil {
		return WorkItemView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return WorkItemView{}, err
		}
		return WorkItemView{}, errs.NewObjectNotFoundError(workitem.KindName[K](), query.ID())
	}

	return scanWorkItemView(rows)
}
