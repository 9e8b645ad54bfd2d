package component

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/input-output-hk/gauntlet/src/domain"
	mocks "github.com/input-output-hk/gauntlet/src/mocks/application/service"
)

func buildRunConsumerMocked(matrixService *mocks.MatrixService, queue <-chan *domain.Run) *RunConsumer {
	return &RunConsumer{
		Logger:        log.Logger,
		Workflow:      domain.Workflow{Name: "tests"},
		MatrixService: matrixService,
		Queue:         queue,
	}
}

func TestRunConsumerExecutesQueuedRuns(t *testing.T) {
	t.Parallel()

	// given
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan *domain.Run, 2)
	first := &domain.Run{ID: [16]byte{1}}
	second := &domain.Run{ID: [16]byte{2}}
	queue <- first
	queue <- second

	matrixService := mocks.NewMatrixService(t)
	matrixService.On("Execute", mock.Anything, mock.Anything, first).Return(nil).Once()
	matrixService.On("Execute", mock.Anything, mock.Anything, second).Run(func(mock.Arguments) {
		cancel()
	}).Return(nil).Once()

	// when
	err := buildRunConsumerMocked(matrixService, queue).Start(ctx)

	// then
	assert.NoError(t, err)
}

func TestRunConsumerFailsOnInfrastructureError(t *testing.T) {
	t.Parallel()

	// given
	queue := make(chan *domain.Run, 1)
	run := &domain.Run{ID: [16]byte{3}}
	queue <- run

	matrixService := mocks.NewMatrixService(t)
	matrixService.On("Execute", mock.Anything, mock.Anything, run).Return(errors.New("connection reset")).Once()

	// when
	err := buildRunConsumerMocked(matrixService, queue).Start(context.Background())

	// then
	assert.ErrorContains(t, err, "connection reset")
}
