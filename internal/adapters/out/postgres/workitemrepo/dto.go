// Package workitemrepo persists orders and service requests. Both kinds share
// one row layout and live in their own table.
package workitemrepo

import (
	"time"

	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"

	"github.com/google/uuid"
)

// WorkItemDTO is the row shape of the orders and service_requests tables.
type WorkItemDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null"`
	ProviderID    uuid.UUID  `gorm:"type:uuid;not null"`
	ServiceID     uuid.UUID  `gorm:"type:uuid;not null"`
	ChargedAmount string     `gorm:"type:numeric(10,2);not null"`
	Status        string     `gorm:"type:text;not null"`
	CreatedAt     time.Time  `gorm:"not null;autoCreateTime:false"`
	CompletedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName returns the table of kind K.
func TableName[K workitem.Kind]() string {
	var k K
	switch any(k).(type) {
	case workitem.ServiceRequestKind:
		return "service_requests"
	default:
		return "orders"
	}
}

func fromDomain[K workitem.Kind](item *workitem.WorkItem[K]) WorkItemDTO {
	return WorkItemDTO{
		ID:            item.ID().Bytes(),
		ClientID:      item.ClientID().Bytes(),
		ProviderID:    item.ProviderID().Bytes(),
		ServiceID:     item.ServiceID().Bytes(),
		ChargedAmount: amountcodec.Encode(item.ChargedAmount()),
		Status:        item.Status().String(),
		CreatedAt:     item.CreatedAt(),
		CompletedAt:   item.CompletedAt(),
	}
}

func toDomain[K workitem.Kind](dto WorkItemDTO, amounts amountcodec.Decoder) (*workitem.WorkItem[K], error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	amount, err := amounts.Decode(TableName[K](), "charged_amount", id.String(), dto.ChargedAmount)
	if err != nil {
		return nil, err
	}

	status, err := workitem.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return workitem.Restore[K](id, clientID, providerID, serviceID, amount, status, dto.CreatedAt, dto.CompletedAt)
}
