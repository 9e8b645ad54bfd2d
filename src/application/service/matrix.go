package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/input-output-hk/gauntlet/src/domain"
)

type MatrixService interface {
	// Plan returns a run with one pending job per matrix entry,
	// or nil if the event does not trigger the workflow.
	Plan(domain.Workflow, domain.Event) *domain.Run
	// Start records a planned run before any of its jobs execute.
	Start(*domain.Run) error
	// Execute runs all jobs of a started run and aggregates its status.
	Execute(context.Context, domain.Workflow, *domain.Run) error
	// Abort fails every job of a started run that will never execute.
	Abort(*domain.Run, error) error
	// Dispatch plans, starts and executes a run for event.
	// It returns nil without error if the event was ignored.
	Dispatch(context.Context, domain.Workflow, domain.Event) (*domain.Run, error)
}

type matrixService struct {
	logger         zerolog.Logger
	triggerService TriggerService
	jobService     JobService
	recorder       Recorder
	parallelism    int
}

// NewMatrixService runs at most parallelism jobs at once, or all if it is not positive.
func NewMatrixService(triggerService TriggerService, jobService JobService, recorder Recorder, parallelism int, logger *zerolog.Logger) MatrixService {
	return &matrixService{
		logger:         logger.With().Str("component", "MatrixService").Logger(),
		triggerService: triggerService,
		jobService:     jobService,
		recorder:       recorder,
		parallelism:    parallelism,
	}
}

func (self matrixService) Plan(workflow domain.Workflow, event domain.Event) *domain.Run {
	if !self.triggerService.Evaluate(workflow, event) {
		return nil
	}
	return domain.NewRun(workflow, event)
}

func (self matrixService) Start(run *domain.Run) error {
	self.logger.Debug().Stringer("run-id", run.ID).Int("jobs", len(run.Jobs)).Msg("Starting Run")
	return errors.WithMessagef(self.recorder.RunStarted(run), "Could not start Run %q", run.ID)
}

func (self matrixService) Execute(ctx context.Context, workflow domain.Workflow, run *domain.Run) error {
	logger := self.logger.With().Stringer("run-id", run.ID).Logger()

	// No shared context: a broken job does not cancel its siblings.
	var group errgroup.Group
	if self.parallelism > 0 {
		group.SetLimit(self.parallelism)
	}

	for _, job := range run.Jobs {
		job := job
		group.Go(func() error {
			return errors.WithMessagef(
				self.jobService.Execute(ctx, workflow, job, run.Event.Source),
				"Could not execute Job %q", job.ID,
			)
		})
	}

	err := group.Wait()
	if err != nil {
		logger.Err(err).Msg("Error while executing jobs")
	}

	run.Finish()
	logger.Debug().Stringer("status", run.Status).Msg("Run finished")

	if recErr := self.recorder.RunFinished(run); recErr != nil && err == nil {
		err = errors.WithMessagef(recErr, "Could not finish Run %q", run.ID)
	}
	return err
}

func (self matrixService) Abort(run *domain.Run, cause error) error {
	self.logger.Warn().Stringer("run-id", run.ID).Err(cause).Msg("Aborting Run")

	for _, job := range run.Jobs {
		if job.State.Terminal() {
			continue
		}
		if err := job.Fail(cause); err != nil {
			return err
		}
		if err := self.recorder.JobChanged(job); err != nil {
			return errors.WithMessagef(err, "Could not abort Job %q", job.ID)
		}
	}

	run.Finish()
	return errors.WithMessagef(self.recorder.RunFinished(run), "Could not abort Run %q", run.ID)
}

func (self matrixService) Dispatch(ctx context.Context, workflow domain.Workflow, event domain.Event) (*domain.Run, error) {
	run := self.Plan(workflow, event)
	if run == nil {
		return nil, nil
	}
	if err := self.Start(run); err != nil {
		return run, err
	}
	return run, self.Execute(ctx, workflow, run)
}
