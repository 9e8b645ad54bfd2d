package service

import (
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/domain"
)

type TriggerService interface {
	// Evaluate reports whether event starts a run of workflow.
	// Events that do not match are not an error.
	Evaluate(domain.Workflow, domain.Event) bool
}

type triggerService struct {
	logger  zerolog.Logger
	metrics *Metrics
}

func NewTriggerService(metrics *Metrics, logger *zerolog.Logger) TriggerService {
	return &triggerService{
		logger:  logger.With().Str("component", "TriggerService").Logger(),
		metrics: metrics,
	}
}

func (self triggerService) Evaluate(workflow domain.Workflow, event domain.Event) bool {
	logger := self.logger.With().
		Str("workflow", workflow.Name).
		Stringer("event", event.Type).
		Str("branch", event.Branch()).
		Logger()

	triggered := false
	if trigger, ok := workflow.On[event.Type]; !ok {
		logger.Debug().Msg("Workflow does not listen to this event type")
	} else if !trigger.Matches(event.Branch()) {
		logger.Debug().Strs("branches", trigger.Branches).Msg("Branch not in allow-list")
	} else {
		triggered = true
		logger.Debug().Msg("Event triggers workflow")
	}

	self.metrics.observeEvent(event, triggered)
	return triggered
}
