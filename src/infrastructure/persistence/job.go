package persistence

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
	"github.com/input-output-hk/gauntlet/src/domain/repository"
)

type jobRepository struct {
	DB config.PgxIface
}

func NewJobRepository(db config.PgxIface) repository.JobRepository {
	return &jobRepository{db}
}

func (a jobRepository) WithQuerier(querier config.PgxIface) repository.JobRepository {
	return &jobRepository{querier}
}

func (a jobRepository) GetById(id uuid.UUID) (*domain.Job, error) {
	return get(
		a.DB, &domain.Job{},
		`SELECT id, run_id, entry, state, error, created_at, finished_at FROM job WHERE id = $1`,
		id,
	)
}

func (a jobRepository) GetByRunId(runId uuid.UUID) (jobs []*domain.Job, err error) {
	err = pgxscan.Select(
		context.Background(), a.DB, &jobs,
		`SELECT id, run_id, entry, state, error, created_at, finished_at FROM job WHERE run_id = $1 ORDER BY created_at, id`,
		runId,
	)
	return
}

func (a jobRepository) GetSteps(jobId uuid.UUID) (steps []domain.StepResult, err error) {
	err = pgxscan.Select(
		context.Background(), a.DB, &steps,
		`SELECT job_id, index, phase, name, command, exit_code, output, truncated, started_at, duration FROM step WHERE job_id = $1 ORDER BY index`,
		jobId,
	)
	return
}

func (a jobRepository) Save(job *domain.Job) error {
	_, err := a.DB.Exec(
		context.Background(),
		`INSERT INTO job (id, run_id, entry, state, created_at) VALUES ($1, $2, $3, $4, $5)`,
		job.ID, job.RunID, job.Entry, job.State.String(), job.CreatedAt,
	)
	return err
}

func (a jobRepository) Update(job *domain.Job) error {
	_, err := a.DB.Exec(
		context.Background(),
		`UPDATE job SET state = $2, error = $3, finished_at = $4 WHERE id = $1`,
		job.ID, job.State.String(), job.Error, job.FinishedAt,
	)
	return err
}

func (a jobRepository) SaveStep(step domain.StepResult) error {
	_, err := a.DB.Exec(
		context.Background(),
		`INSERT INTO step (job_id, index, phase, name, command, exit_code, output, truncated, started_at, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		step.JobID, step.Index, string(step.Phase), step.Name, step.Command,
		step.ExitCode, step.Output, step.Truncated, step.StartedAt, int64(step.Duration),
	)
	return err
}
