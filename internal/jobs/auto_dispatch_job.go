package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultAutoDispatchSchedule runs the job every ten seconds.
	DefaultAutoDispatchSchedule = "*/10 * * * * *"
	DefaultAutoDispatchLocation = "depot"
)

// PaidParcelDispatcher dispatches every parcel that passes the dispatch gate.
type PaidParcelDispatcher interface {
	DispatchPaid(ctx context.Context, location string, batchSize int) (int, error)
}

// AutoDispatchJob periodically dispatches parcels whose remaining charge is
// within the dispatch threshold, sending them off from a fixed location.
type AutoDispatchJob struct {
	dispatcher PaidParcelDispatcher
	schedule   string
	location   string
	batchSize  int
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewAutoDispatchJob(
	dispatcher PaidParcelDispatcher,
	schedule string,
	location string,
	batchSize int,
	logger *slog.Logger,
) *AutoDispatchJob {
	if schedule == "" {
		schedule = DefaultAutoDispatchSchedule
	}

	return &AutoDispatchJob{
		dispatcher: dispatcher,
		schedule:   schedule,
		location:   location,
		batchSize:  batchSize,
		cron:       cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "auto_dispatch_job"),
	}
}

// Start schedules the job. A run still in progress when the next tick fires
// makes that tick a no-op.
func (j *AutoDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto dispatch job started",
		"schedule", j.schedule,
		"location", j.location,
	)
	return nil
}

// RunOnce performs a single pass and returns how many parcels left.
func (j *AutoDispatchJob) RunOnce(ctx context.Context) int {
	dispatched, err := j.dispatcher.DispatchPaid(ctx, j.location, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Auto dispatch job failed", "error", err, "dispatched", dispatched)
		return dispatched
	}

	if dispatched > 0 {
		j.logger.InfoContext(ctx, "Parcels dispatched", "count", dispatched, "location", j.location)
	}
	return dispatched
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *AutoDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Auto dispatch job stopped")
}
