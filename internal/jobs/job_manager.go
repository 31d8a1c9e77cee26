package jobs

import (
	"fmt"

	"marketplace/internal/core/domain/model/workitem"

	"github.com/rs/zerolog"
)

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	ordersJob   *AutoCancelJob[workitem.OrderKind]
	requestsJob *AutoCancelJob[workitem.ServiceRequestKind]
}

func NewJobManager(
	ordersHandler autoCancelHandler[workitem.OrderKind],
	requestsHandler autoCancelHandler[workitem.ServiceRequestKind],
	schedule string,
	batchSize int,
	logger zerolog.Logger,
) (*JobManager, error) {
	ordersJob, err := NewAutoCancelJob[workitem.OrderKind](ordersHandler, schedule, batchSize, logger)
	if err != nil {
		return nil, err
	}

	requestsJob, err := NewAutoCancelJob[workitem.ServiceRequestKind](requestsHandler, schedule, batchSize, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{ordersJob: ordersJob, requestsJob: requestsJob}, nil
}

// StartAll returns an error if any job fails to start; jobs already started
// are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.ordersJob.Start(); err != nil {
		return fmt.Errorf("failed to start order auto cancel job: %w", err)
	}

	if err := jm.requestsJob.Start(); err != nil {
		jm.ordersJob.Stop()
		return fmt.Errorf("failed to start service request auto cancel job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.ordersJob.Stop()
	jm.requestsJob.Stop()
}
