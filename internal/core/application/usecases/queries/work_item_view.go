package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const workItemColumns = "id, client_id, provider_id, service_id, charged_amount, status, created_at, completed_at"

// WorkItemView is the read model of an order or service request.
type WorkItemView struct {
	ID            kernel.UUID
	ClientID      kernel.UUID
	ProviderID    kernel.UUID
	ServiceID     kernel.UUID
	ChargedAmount decimal.Decimal
	Status        workitem.Status
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

func scanWorkItemView(rows *sql.Rows) (WorkItemView, error) {
	var (
		view                                WorkItemView
		id, clientID, providerID, serviceID uuid.UUID
		status                              string
		completedAt                         sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&clientID,
		&providerID,
		&serviceID,
		&view.ChargedAmount,
		&status,
		&view.CreatedAt,
		&completedAt,
	); err != nil {
		return WorkItemView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return WorkItemView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return WorkItemView{}, err
	}
	if view.ProviderID, err = kernel.UUIDFromBytes(providerID[:]); err != nil {
		return WorkItemView{}, err
	}
	if view.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
		return WorkItemView{}, err
	}
	if view.Status, err = workitem.ParseStatus(status); err != nil {
		return WorkItemView{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		view.CompletedAt = &t
	}

	return view, nil
}
