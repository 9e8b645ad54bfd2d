package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RunStatus uint

const (
	RunStatusRunning RunStatus = iota
	RunStatusSucceeded
	RunStatusFailed
)

func (self RunStatus) String() string {
	switch self {
	case RunStatusRunning:
		return "running"
	case RunStatusSucceeded:
		return "succeeded"
	case RunStatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("RunStatus(%d)", uint(self))
	}
}

func (self *RunStatus) FromString(str string) error {
	switch str {
	case "running":
		*self = RunStatusRunning
	case "succeeded":
		*self = RunStatusSucceeded
	case "failed":
		*self = RunStatusFailed
	default:
		return fmt.Errorf("Unknown run status %q", str)
	}
	return nil
}

func (self RunStatus) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}

func (self *RunStatus) UnmarshalText(text []byte) error {
	return self.FromString(string(text))
}

func (self *RunStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return self.FromString(v)
	case []byte:
		return self.FromString(string(v))
	default:
		return fmt.Errorf("Cannot scan %T into RunStatus", value)
	}
}

func (self RunStatus) Value() (driver.Value, error) {
	return self.String(), nil
}

// Run is everything one triggering event started.
type Run struct {
	ID         uuid.UUID  `json:"id"`
	Workflow   string     `json:"workflow"`
	Event      Event      `json:"event"`
	Status     RunStatus  `json:"status"`
	Jobs       []*Job     `json:"jobs,omitempty" db:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func NewRun(workflow Workflow, event Event) *Run {
	run := &Run{
		ID:        uuid.New(),
		Workflow:  workflow.Name,
		Event:     event,
		Status:    RunStatusRunning,
		CreatedAt: time.Now().UTC(),
	}
	for _, entry := range workflow.Matrix.Entries() {
		run.Jobs = append(run.Jobs, NewJob(run.ID, entry))
	}
	return run
}

// Finish aggregates the job states.
// The run succeeds only if every job succeeded.
func (self *Run) Finish() {
	self.Status = RunStatusSucceeded
	for _, job := range self.Jobs {
		if job.State != JobStateSucceeded {
			self.Status = RunStatusFailed
			break
		}
	}
	now := time.Now().UTC()
	self.FinishedAt = &now
}
