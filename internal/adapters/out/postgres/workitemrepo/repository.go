package workitemrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkItemRepository implements ports.WorkItemRepository[K] using GORM.
type GormWorkItemRepository[K workitem.Kind] struct {
	db      *gorm.DB
	tracker aggregateTracker
	amounts amountcodec.Decoder
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormWorkItemRepository[K workitem.Kind](
	db *gorm.DB,
	tracker aggregateTracker,
	amounts amountcodec.Decoder,
) *GormWorkItemRepository[K] {
	return &GormWorkItemRepository[K]{
		db:      db,
		tracker: tracker,
		amounts: amounts,
	}
}

func (r *GormWorkItemRepository[K]) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(TableName[K]())
}

func (r *GormWorkItemRepository[K]) Add(ctx context.Context, item *workitem.WorkItem[K]) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.table(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update writes status and completion time, the only columns a transition changes.
func (r *GormWorkItemRepository[K]) Update(ctx context.Context, item *workitem.WorkItem[K]) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.table(ctx).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(workitem.KindName[K](), item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormWorkItemRepository[K]) Get(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error) {
	return r.get(r.table(ctx), id)
}

// GetForUpdate issues SELECT ... FOR UPDATE. Outside a transaction the lock
// is released immediately.
func (r *GormWorkItemRepository[K]) GetForUpdate(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error) {
	return r.get(r.table(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormWorkItemRepository[K]) get(tx *gorm.DB, id kernel.UUID) (*workitem.WorkItem[K], error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkItemDTO
	if err := tx.Where("id = ?", id.Bytes()).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(workitem.KindName[K](), id.String())
		}
		return nil, err
	}

	return toDomain[K](dto, r.amounts)
}

func (r *GormWorkItemRepository[K]) GetPendingIDsCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]kernel.UUID, error) {
	var rawIDs []uuid.UUID
	err := r.table(ctx).
		Where("status = ? AND created_at <= ?", workitem.Pending.String(), cutoff).
		Order("created_at, id").
		Limit(limit).
		Pluck("id", &rawIDs).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
