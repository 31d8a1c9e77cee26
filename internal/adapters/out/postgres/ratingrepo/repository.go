package ratingrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a new rating. A second rating for the same order is rejected by
// the unique index on order_id and reported as OrderAlreadyRated.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_ratings_order_id" {
			return rating.NewRejectionError(rating.OrderAlreadyRated, aggregate.OrderID().String(), "")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) Update(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"score":      dto.Score,
			"comment":    dto.Comment,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rating", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RatingDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rating", id.String())
	}

	return nil
}

func (r *GormRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "rating", id, "id = ?")
}

func (r *GormRatingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*rating.Rating, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "rating for order", orderID, "order_id = ?")
}

func (r *GormRatingRepository) first(ctx context.Context, param string, id kernel.UUID, cond string) (*rating.Rating, error) {
	var dto RatingDTO
	if err := r.db.WithContext(ctx).Where(cond, id.Bytes()).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
