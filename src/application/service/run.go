package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
	"github.com/input-output-hk/gauntlet/src/domain/repository"
	"github.com/input-output-hk/gauntlet/src/infrastructure/persistence"
)

type RunService interface {
	Recorder

	// GetById returns the run with its jobs and their steps, or nil.
	GetById(uuid.UUID) (*domain.Run, error)
	GetAll(*repository.Page) ([]*domain.Run, error)
}

type runService struct {
	logger        zerolog.Logger
	runRepository repository.RunRepository
	jobRepository repository.JobRepository
	db            config.PgxIface
}

func NewRunService(db config.PgxIface, logger *zerolog.Logger) RunService {
	return &runService{
		logger:        logger.With().Str("component", "RunService").Logger(),
		runRepository: persistence.NewRunRepository(db),
		jobRepository: persistence.NewJobRepository(db),
		db:            db,
	}
}

func (self runService) withQuerier(querier config.PgxIface) *runService {
	return &runService{
		logger:        self.logger,
		runRepository: self.runRepository.WithQuerier(querier),
		jobRepository: self.jobRepository.WithQuerier(querier),
		db:            querier,
	}
}

func (self runService) GetById(id uuid.UUID) (*domain.Run, error) {
	logger := self.logger.With().Stringer("run-id", id).Logger()
	logger.Trace().Msg("Getting Run by ID")

	run, err := self.runRepository.GetById(id)
	if err != nil {
		return nil, errors.WithMessagef(err, "Could not select Run with ID %q", id)
	} else if run == nil {
		return nil, nil
	}

	if run.Jobs, err = self.jobRepository.GetByRunId(id); err != nil {
		return nil, errors.WithMessagef(err, "Could not select Jobs of Run %q", id)
	}
	for _, job := range run.Jobs {
		if job.Steps, err = self.jobRepository.GetSteps(job.ID); err != nil {
			return nil, errors.WithMessagef(err, "Could not select Steps of Job %q", job.ID)
		}
	}

	logger.Trace().Int("jobs", len(run.Jobs)).Msg("Got Run by ID")
	return run, nil
}

func (self runService) GetAll(page *repository.Page) (runs []*domain.Run, err error) {
	self.logger.Trace().Int("offset", page.Offset).Int("limit", page.Limit).Msg("Getting all Runs")
	runs, err = self.runRepository.GetAll(page)
	err = errors.WithMessagef(err, "Could not select existing Runs with offset %d and limit %d", page.Offset, page.Limit)
	return
}

// RunStarted saves the run and all of its pending jobs in one transaction.
func (self runService) RunStarted(run *domain.Run) error {
	self.logger.Trace().Stringer("run-id", run.ID).Msg("Saving new Run")
	if err := pgx.BeginFunc(context.Background(), self.db, func(tx pgx.Tx) error {
		txSelf := self.withQuerier(tx)

		if err := txSelf.runRepository.Save(run); err != nil {
			return errors.WithMessage(err, "Could not insert Run")
		}
		for _, job := range run.Jobs {
			if err := txSelf.jobRepository.Save(job); err != nil {
				return errors.WithMessagef(err, "Could not insert Job %q", job.ID)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	self.logger.Trace().Stringer("run-id", run.ID).Int("jobs", len(run.Jobs)).Msg("Created Run")
	return nil
}

func (self runService) JobChanged(job *domain.Job) error {
	self.logger.Trace().Stringer("job-id", job.ID).Stringer("state", job.State).Msg("Updating Job")
	if err := self.jobRepository.Update(job); err != nil {
		return errors.WithMessagef(err, "Could not update Job %q", job.ID)
	}
	return nil
}

func (self runService) StepFinished(job *domain.Job, step domain.StepResult) error {
	self.logger.Trace().Stringer("job-id", job.ID).Int("index", step.Index).Msg("Saving Step")
	if err := self.jobRepository.SaveStep(step); err != nil {
		return errors.WithMessagef(err, "Could not insert Step %d of Job %q", step.Index, job.ID)
	}
	return nil
}

func (self runService) RunFinished(run *domain.Run) error {
	self.logger.Trace().Stringer("run-id", run.ID).Stringer("status", run.Status).Msg("Updating Run")
	if err := self.runRepository.Update(run); err != nil {
		return errors.WithMessagef(err, "Could not update Run %q", run.ID)
	}
	return nil
}
