// Package ratingrepo persists ratings.
package ratingrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Score      int       `gorm:"type:smallint;not null"`
	Comment    *string
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(r *rating.Rating) RatingDTO {
	var comment *string
	if c := r.Comment(); c != nil {
		s := c.String()
		comment = &s
	}

	return RatingDTO{
		ID:         r.ID().Bytes(),
		OrderID:    r.OrderID().Bytes(),
		ClientID:   r.ClientID().Bytes(),
		ProviderID: r.ProviderID().Bytes(),
		Score:      r.Score().Int(),
		Comment:    comment,
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	score, err := kernel.NewScore(dto.Score)
	if err != nil {
		return nil, err
	}

	var comment *kernel.Comment
	if dto.Comment != nil {
		c, commentErr := kernel.NewComment(*dto.Comment)
		if commentErr != nil {
			return nil, commentErr
		}
		comment = &c
	}

	return rating.Restore(id, orderID, clientID, providerID, score, comment, dto.CreatedAt, dto.UpdatedAt)
}
