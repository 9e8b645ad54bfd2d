package component

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/domain"
)

// RunConsumer executes runs that the API started, one at a time.
type RunConsumer struct {
	Logger        zerolog.Logger
	Workflow      domain.Workflow
	MatrixService service.MatrixService
	Queue         <-chan *domain.Run
}

func (self *RunConsumer) Start(ctx context.Context) error {
	self.Logger.Info().Msg("Starting")

	for {
		select {
		case <-ctx.Done():
			self.Logger.Debug().Msg("Stopping")
			return nil
		case run := <-self.Queue:
			logger := self.Logger.With().Stringer("run-id", run.ID).Logger()
			logger.Debug().Int("jobs", len(run.Jobs)).Msg("Executing Run")

			if err := self.MatrixService.Execute(ctx, self.Workflow, run); err != nil {
				return errors.WithMessagef(err, "Error executing Run %q", run.ID)
			}

			logger.Info().Stringer("status", run.Status).Msg("Executed Run")
		}
	}
}
