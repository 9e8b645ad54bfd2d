package service

import (
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/domain"
)

// Recorder is told about everything that happens to a run.
// Errors are infrastructure failures and abort the run.
type Recorder interface {
	RunStarted(*domain.Run) error
	JobChanged(*domain.Job) error
	StepFinished(*domain.Job, domain.StepResult) error
	RunFinished(*domain.Run) error
}

// Recorders notifies each recorder in order, stopping at the first error.
type Recorders []Recorder

func (self Recorders) RunStarted(run *domain.Run) error {
	for _, r := range self {
		if err := r.RunStarted(run); err != nil {
			return err
		}
	}
	return nil
}

func (self Recorders) JobChanged(job *domain.Job) error {
	for _, r := range self {
		if err := r.JobChanged(job); err != nil {
			return err
		}
	}
	return nil
}

func (self Recorders) StepFinished(job *domain.Job, step domain.StepResult) error {
	for _, r := range self {
		if err := r.StepFinished(job, step); err != nil {
			return err
		}
	}
	return nil
}

func (self Recorders) RunFinished(run *domain.Run) error {
	for _, r := range self {
		if err := r.RunFinished(run); err != nil {
			return err
		}
	}
	return nil
}

type logRecorder struct {
	logger zerolog.Logger
}

// NewLogRecorder only logs, for runs that are not persisted.
func NewLogRecorder(logger *zerolog.Logger) Recorder {
	return &logRecorder{logger.With().Str("component", "LogRecorder").Logger()}
}

func (self logRecorder) RunStarted(run *domain.Run) error {
	self.logger.Info().
		Stringer("run-id", run.ID).
		Str("workflow", run.Workflow).
		Int("jobs", len(run.Jobs)).
		Msg("Run started")
	return nil
}

func (self logRecorder) JobChanged(job *domain.Job) error {
	event := self.logger.Info()
	if job.State == domain.JobStateFailed {
		event = self.logger.Warn()
		if job.Error != nil {
			event = event.Str("error", *job.Error)
		}
	}
	event.
		Stringer("job-id", job.ID).
		Stringer("entry", job.Entry).
		Stringer("state", job.State).
		Msg("Job changed")
	return nil
}

func (self logRecorder) StepFinished(job *domain.Job, step domain.StepResult) error {
	self.logger.Info().
		Stringer("job-id", job.ID).
		Stringer("entry", job.Entry).
		Str("phase", string(step.Phase)).
		Str("step", step.Name).
		Int("exit-code", step.ExitCode).
		Dur("duration", step.Duration).
		Msg("Step finished")
	return nil
}

func (self logRecorder) RunFinished(run *domain.Run) error {
	self.logger.Info().
		Stringer("run-id", run.ID).
		Stringer("status", run.Status).
		Msg("Run finished")
	return nil
}
