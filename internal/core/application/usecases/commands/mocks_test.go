package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rating"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type MockWorkItemRepository[K workitem.Kind] struct{ mock.Mock }

func (m *MockWorkItemRepository[K]) Add(ctx context.Context, item *workitem.WorkItem[K]) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockWorkItemRepository[K]) Update(ctx context.Context, item *workitem.WorkItem[K]) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockWorkItemRepository[K]) Get(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*workitem.WorkItem[K])
	return item, args.Error(1)
}

func (m *MockWorkItemRepository[K]) GetForUpdate(ctx context.Context, id kernel.UUID) (*workitem.WorkItem[K], error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*workitem.WorkItem[K])
	return item, args.Error(1)
}

func (m *MockWorkItemRepository[K]) GetPendingIDsCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, r *rating.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*rating.Rating)
	return r, args.Error(1)
}

func (m *MockRatingRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*rating.Rating, error) {
	args := m.Called(ctx, orderID)
	r, _ := args.Get(0).(*rating.Rating)
	return r, args.Error(1)
}

type MockOfferingRepository struct{ mock.Mock }

func (m *MockOfferingRepository) Add(ctx context.Context, o *catalog.Offering) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferingRepository) Update(ctx context.Context, o *catalog.Offering) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferingRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Offering, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*catalog.Offering)
	return o, args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers use.
type MockUoW[K workitem.Kind] struct{ mock.Mock }

func (m *MockUoW[K]) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW[K]) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW[K]) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW[K]) WorkItemRepository() ports.WorkItemRepository[K] {
	return m.Called().Get(0).(ports.WorkItemRepository[K])
}

func (m *MockUoW[K]) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW[K]) RatingRepository() ports.RatingRepository {
	return m.Called().Get(0).(ports.RatingRepository)
}

func (m *MockUoW[K]) OfferingRepository() ports.OfferingRepository {
	return m.Called().Get(0).(ports.OfferingRepository)
}

type MockWorkItemUoWFactory[K workitem.Kind] struct{ mock.Mock }

func (m *MockWorkItemUoWFactory[K]) Create() commands.WorkItemUoW[K] {
	return m.Called().Get(0).(commands.WorkItemUoW[K])
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	return m.Called().Get(0).(commands.RatingUoW)
}

type MockOfferingUoWFactory struct{ mock.Mock }

func (m *MockOfferingUoWFactory) Create() commands.OfferingUoW {
	return m.Called().Get(0).(commands.OfferingUoW)
}

func money(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func restoreItem[K workitem.Kind](
	t *testing.T,
	status workitem.Status,
	createdAt time.Time,
	completedAt *time.Time,
) *workitem.WorkItem[K] {
	t.Helper()
	item, err := workitem.Restore[K](
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		money(t, 100), status, createdAt, completedAt)
	require.NoError(t, err)
	return item
}

func offering(t *testing.T, status catalog.Status) *catalog.Offering {
	t.Helper()
	title, err := kernel.NewTitle("House cleaning")
	require.NoError(t, err)
	description, err := kernel.NewDescription("Full apartment cleaning, supplies included")
	require.NoError(t, err)
	o, err := catalog.RestoreOffering(kernel.NewUUID(), kernel.NewUUID(), title, description, money(t, 60), status)
	require.NoError(t, err)
	return o
}
