package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/workitem"
	"marketplace/internal/jobs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAutoCancelHandler[K workitem.Kind] struct {
	mock.Mock
}

func (m *MockAutoCancelHandler[K]) Handle(
	ctx context.Context,
	cmd commands.AutoCancelExpiredCommand[K],
) (commands.AutoCancelResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AutoCancelResult), args.Error(1)
}

func TestNewAutoCancelJob_InvalidBatchSize(t *testing.T) {
	handler := new(MockAutoCancelHandler[workitem.OrderKind])

	_, err := jobs.NewAutoCancelJob[workitem.OrderKind](handler, "", 0, zerolog.Nop())

	require.Error(t, err)
}

func TestAutoCancelJob_Run(t *testing.T) {
	t.Run("logs counts", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		handler := new(MockAutoCancelHandler[workitem.OrderKind])
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.AutoCancelResult{Cancelled: 3, Skipped: 1}, nil).Once()
		job, err := jobs.NewAutoCancelJob[workitem.OrderKind](handler, "", 50, zerolog.New(&buf))
		require.NoError(t, err)

		// When
		job.Run(context.Background())

		// Then
		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), `"cancelled":3`)
		assert.Contains(t, buf.String(), `"skipped":1`)
		assert.Contains(t, buf.String(), `"component":"auto_cancel_order_job"`)
	})

	t.Run("stays quiet when nothing expired", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		handler := new(MockAutoCancelHandler[workitem.ServiceRequestKind])
		handler.On("Handle", mock.Anything, mock.Anything).Return(commands.AutoCancelResult{}, nil).Once()
		job, err := jobs.NewAutoCancelJob[workitem.ServiceRequestKind](handler, "", 50, zerolog.New(&buf))
		require.NoError(t, err)

		// When
		job.Run(context.Background())

		// Then
		handler.AssertExpectations(t)
		assert.Empty(t, buf.String())
	})

	t.Run("logs errors", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		handler := new(MockAutoCancelHandler[workitem.ServiceRequestKind])
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.AutoCancelResult{Cancelled: 1}, errors.New("connection reset")).Once()
		job, err := jobs.NewAutoCancelJob[workitem.ServiceRequestKind](handler, "", 50, zerolog.New(&buf))
		require.NoError(t, err)

		// When
		job.Run(context.Background())

		// Then
		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), `"component":"auto_cancel_service_request_job"`)
	})
}

func TestAutoCancelJob_StartRunsOnSchedule(t *testing.T) {
	// Given
	ran := make(chan struct{}, 10)
	handler := new(MockAutoCancelHandler[workitem.OrderKind])
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { ran <- struct{}{} }).
		Return(commands.AutoCancelResult{}, nil)
	job, err := jobs.NewAutoCancelJob[workitem.OrderKind](handler, "* * * * * *", 10, zerolog.Nop())
	require.NoError(t, err)

	// When
	require.NoError(t, job.Start())
	defer job.Stop()

	// Then
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestAutoCancelJob_StartRejectsBadSchedule(t *testing.T) {
	handler := new(MockAutoCancelHandler[workitem.OrderKind])
	job, err := jobs.NewAutoCancelJob[workitem.OrderKind](handler, "every now and then", 10, zerolog.Nop())
	require.NoError(t, err)

	err = job.Start()

	require.Error(t, err)
}

func TestJobManager_StartAllFailsOnBadSchedule(t *testing.T) {
	manager, err := jobs.NewJobManager(
		new(MockAutoCancelHandler[workitem.OrderKind]),
		new(MockAutoCancelHandler[workitem.ServiceRequestKind]),
		"not a schedule",
		10,
		zerolog.Nop(),
	)
	require.NoError(t, err)

	err = manager.StartAll()

	require.ErrorContains(t, err, "failed to start order auto cancel job")
}
