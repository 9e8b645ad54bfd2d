package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/domain"
)

// JobUpdate is a snapshot of a job taken when it changed.
type JobUpdate struct {
	RunID uuid.UUID          `json:"run_id"`
	Job   domain.Job         `json:"job"`
	Step  *domain.StepResult `json:"step,omitempty"`
	// Done is set once the whole run finished. No updates follow it.
	Done   bool             `json:"done,omitempty"`
	Status domain.RunStatus `json:"status"`
}

// Broadcaster fans job updates out to subscribers of a run.
// Slow subscribers miss updates instead of blocking jobs.
type Broadcaster struct {
	logger zerolog.Logger
	mutex  sync.Mutex
	subs   map[uuid.UUID]map[chan JobUpdate]struct{}
}

const subscriberBuffer = 64

func NewBroadcaster(logger *zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		logger: logger.With().Str("component", "Broadcaster").Logger(),
		subs:   map[uuid.UUID]map[chan JobUpdate]struct{}{},
	}
}

// Subscribe returns a channel of updates for runId and a function to stop.
// The channel is closed when the run finishes or on unsubscribe.
func (self *Broadcaster) Subscribe(runId uuid.UUID) (<-chan JobUpdate, func()) {
	ch := make(chan JobUpdate, subscriberBuffer)

	self.mutex.Lock()
	if self.subs[runId] == nil {
		self.subs[runId] = map[chan JobUpdate]struct{}{}
	}
	self.subs[runId][ch] = struct{}{}
	self.mutex.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			self.mutex.Lock()
			defer self.mutex.Unlock()
			if subs, ok := self.subs[runId]; ok {
				if _, ok := subs[ch]; ok {
					delete(subs, ch)
					close(ch)
				}
				if len(subs) == 0 {
					delete(self.subs, runId)
				}
			}
		})
	}
}

func (self *Broadcaster) publish(runId uuid.UUID, update JobUpdate, last bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	for ch := range self.subs[runId] {
		select {
		case ch <- update:
		default:
			self.logger.Warn().Stringer("run-id", runId).Msg("Dropping update for slow subscriber")
		}
		if last {
			close(ch)
		}
	}
	if last {
		delete(self.subs, runId)
	}
}

func (self *Broadcaster) RunStarted(*domain.Run) error {
	return nil
}

func (self *Broadcaster) JobChanged(job *domain.Job) error {
	snapshot := *job
	snapshot.Steps = nil
	self.publish(job.RunID, JobUpdate{RunID: job.RunID, Job: snapshot}, false)
	return nil
}

func (self *Broadcaster) StepFinished(job *domain.Job, step domain.StepResult) error {
	snapshot := *job
	snapshot.Steps = nil
	self.publish(job.RunID, JobUpdate{RunID: job.RunID, Job: snapshot, Step: &step}, false)
	return nil
}

func (self *Broadcaster) RunFinished(run *domain.Run) error {
	self.publish(run.ID, JobUpdate{RunID: run.ID, Done: true, Status: run.Status}, true)
	return nil
}
