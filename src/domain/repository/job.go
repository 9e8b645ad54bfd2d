package repository

import (
	"github.com/google/uuid"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
)

type JobRepository interface {
	WithQuerier(config.PgxIface) JobRepository

	GetById(uuid.UUID) (*domain.Job, error)
	GetByRunId(uuid.UUID) ([]*domain.Job, error)
	GetSteps(uuid.UUID) ([]domain.StepResult, error)
	Save(*domain.Job) error
	Update(*domain.Job) error
	SaveStep(domain.StepResult) error
}
