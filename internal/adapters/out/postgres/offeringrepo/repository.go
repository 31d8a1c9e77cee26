package offeringrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOfferingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	amounts amountcodec.Decoder
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOfferingRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	amounts amountcodec.Decoder,
) *GormOfferingRepository {
	return &GormOfferingRepository{
		db:      db,
		tracker: tracker,
		amounts: amounts,
	}
}

func (r *GormOfferingRepository) Add(ctx context.Context, aggregate *catalog.Offering) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOfferingRepository) Update(ctx context.Context, aggregate *catalog.Offering) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfferingDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offering", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOfferingRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Offering, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offering", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.amounts)
}
