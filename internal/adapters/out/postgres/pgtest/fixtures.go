package pgtest

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/amountcodec"
	"marketplace/internal/adapters/out/postgres/offeringrepo"
	"marketplace/internal/adapters/out/postgres/workitemrepo"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/workitem"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NopTracker discards tracked aggregates.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.UUID, any) {}

// Amounts is a lenient decoder that writes nowhere.
func Amounts() amountcodec.Decoder {
	return amountcodec.NewDecoder(zerolog.Nop(), false)
}

// SeedOffering stores an active offering of providerID priced at 150.00.
func SeedOffering(ctx context.Context, db *gorm.DB, providerID kernel.UUID) (*catalog.Offering, error) {
	title, err := kernel.NewTitle("House cleaning")
	if err != nil {
		return nil, err
	}
	description, err := kernel.NewDescription("Weekly cleaning of a two room flat")
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(150)
	if err != nil {
		return nil, err
	}

	o, err := catalog.NewOffering(kernel.NewUUID(), providerID, title, description, price)
	if err != nil {
		return nil, err
	}

	if err = offeringrepo.NewGormOfferingRepository(db, NopTracker{}, Amounts()).Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// SeedWorkItem stores a work item for offering in the given status. A
// Completed item is completed one hour after createdAt.
func SeedWorkItem[K workitem.Kind](
	ctx context.Context,
	db *gorm.DB,
	offering *catalog.Offering,
	clientID kernel.UUID,
	status workitem.Status,
	createdAt time.Time,
) (*workitem.WorkItem[K], error) {
	var completedAt *time.Time
	if status == workitem.Completed {
		t := createdAt.Add(time.Hour)
		completedAt = &t
	}

	item, err := workitem.Restore[K](
		kernel.NewUUID(), clientID, offering.ProviderID(), offering.ID(),
		offering.Price(), status, createdAt, completedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = workitemrepo.NewGormWorkItemRepository[K](db, NopTracker{}, Amounts()).Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
