package repository

import (
	"github.com/google/uuid"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
)

type RunRepository interface {
	WithQuerier(config.PgxIface) RunRepository

	GetById(uuid.UUID) (*domain.Run, error)
	GetAll(*Page) ([]*domain.Run, error)
	Save(*domain.Run) error
	Update(*domain.Run) error
}
