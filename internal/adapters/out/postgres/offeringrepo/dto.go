// Package offeringrepo persists catalog offerings.
package offeringrepo

import (
	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type OfferingDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       string    `gorm:"type:numeric(10,2);not null"`
	Status      string    `gorm:"type:text;not null"`
}

func (OfferingDTO) TableName() string {
	return "offerings"
}

func fromDomain(o *catalog.Offering) OfferingDTO {
	return OfferingDTO{
		ID:          o.ID().Bytes(),
		ProviderID:  o.ProviderID().Bytes(),
		Title:       o.Title().String(),
		Description: o.Description().String(),
		Price:       amountcodec.Encode(o.Price()),
		Status:      o.Status().String(),
	}
}

func toDomain(dto OfferingDTO, amounts amountcodec.Decoder) (*catalog.Offering, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	title, err := kernel.NewTitle(dto.Title)
	if err != nil {
		return nil, err
	}
	description, err := kernel.NewDescription(dto.Description)
	if err != nil {
		return nil, err
	}

	price, err := amounts.Decode(dto.TableName(), "price", id.String(), dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := catalog.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreOffering(id, providerID, title, description, price, status)
}
