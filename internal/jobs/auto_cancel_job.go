package jobs

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/workitem"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultSchedule runs the sweep at the start of every minute.
const DefaultSchedule = "0 * * * * *"

type autoCancelHandler[K workitem.Kind] interface {
	Handle(ctx context.Context, cmd commands.AutoCancelExpiredCommand[K]) (commands.AutoCancelResult, error)
}

// AutoCancelJob periodically runs AutoCancelExpired for kind K.
type AutoCancelJob[K workitem.Kind] struct {
	handler  autoCancelHandler[K]
	cmd      commands.AutoCancelExpiredCommand[K]
	schedule string
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewAutoCancelJob[K workitem.Kind](
	handler autoCancelHandler[K],
	schedule string,
	batchSize int,
	logger zerolog.Logger,
) (*AutoCancelJob[K], error) {
	cmd, err := commands.NewAutoCancelExpiredCommand[K](batchSize)
	if err != nil {
		return nil, err
	}

	if schedule == "" {
		schedule = DefaultSchedule
	}

	component := "auto_cancel_" + strings.ReplaceAll(workitem.KindName[K](), " ", "_") + "_job"
	log := logger.With().Str("component", component).Logger()

	return &AutoCancelJob[K]{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: log,
	}, nil
}

// Run performs one sweep.
func (j *AutoCancelJob[K]) Run(ctx context.Context) {
	started := time.Now()

	result, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.Error().
			Err(err).
			Int("cancelled", result.Cancelled).
			Int("skipped", result.Skipped).
			Msg("auto cancel sweep finished with errors")
		return
	}

	if result.Cancelled == 0 && result.Skipped == 0 {
		return
	}

	j.logger.Info().
		Int("cancelled", result.Cancelled).
		Int("skipped", result.Skipped).
		Dur("took", time.Since(started)).
		Msg("auto cancel sweep finished")
}

func (j *AutoCancelJob[K]) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("auto cancel job started")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *AutoCancelJob[K]) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("auto cancel job stopped")
}
