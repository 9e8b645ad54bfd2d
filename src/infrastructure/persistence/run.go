package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
	"github.com/input-output-hk/gauntlet/src/domain/repository"
)

type runRepository struct {
	DB config.PgxIface
}

func NewRunRepository(db config.PgxIface) repository.RunRepository {
	return &runRepository{db}
}

func (a runRepository) WithQuerier(querier config.PgxIface) repository.RunRepository {
	return &runRepository{querier}
}

func (a runRepository) GetById(id uuid.UUID) (*domain.Run, error) {
	return get(
		a.DB, &domain.Run{},
		`SELECT id, workflow, event, status, created_at, finished_at FROM run WHERE id = $1`,
		id,
	)
}

func (a runRepository) GetAll(page *repository.Page) ([]*domain.Run, error) {
	runs := make([]*domain.Run, 0, page.Limit)
	return runs, fetchPage(
		a.DB, page, &runs,
		`id, workflow, event, status, created_at, finished_at`, `run`, `created_at DESC`,
	)
}

func (a runRepository) Save(run *domain.Run) error {
	_, err := a.DB.Exec(
		context.Background(),
		`INSERT INTO run (id, workflow, event, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
		run.ID, run.Workflow, run.Event, run.Status.String(), run.CreatedAt,
	)
	return err
}

func (a runRepository) Update(run *domain.Run) error {
	_, err := a.DB.Exec(
		context.Background(),
		`UPDATE run SET status = $2, finished_at = $3 WHERE id = $1`,
		run.ID, run.Status.String(), run.FinishedAt,
	)
	return err
}
