package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobState uint

const (
	JobStatePending JobState = iota
	JobStateProvisioning
	JobStateInstalling
	JobStateTesting
	JobStateSucceeded
	JobStateFailed
)

func (self JobState) String() string {
	switch self {
	case JobStatePending:
		return "pending"
	case JobStateProvisioning:
		return "provisioning"
	case JobStateInstalling:
		return "installing"
	case JobStateTesting:
		return "testing"
	case JobStateSucceeded:
		return "succeeded"
	case JobStateFailed:
		return "failed"
	default:
		return fmt.Sprintf("JobState(%d)", uint(self))
	}
}

func (self *JobState) FromString(str string) error {
	switch str {
	case "pending":
		*self = JobStatePending
	case "provisioning":
		*self = JobStateProvisioning
	case "installing":
		*self = JobStateInstalling
	case "testing":
		*self = JobStateTesting
	case "succeeded":
		*self = JobStateSucceeded
	case "failed":
		*self = JobStateFailed
	default:
		return fmt.Errorf("Unknown job state %q", str)
	}
	return nil
}

func (self JobState) Terminal() bool {
	return self == JobStateSucceeded || self == JobStateFailed
}

// next returns the only non-failure successor of a state.
func (self JobState) next() (JobState, bool) {
	switch self {
	case JobStatePending:
		return JobStateProvisioning, true
	case JobStateProvisioning:
		return JobStateInstalling, true
	case JobStateInstalling:
		return JobStateTesting, true
	case JobStateTesting:
		return JobStateSucceeded, true
	default:
		return 0, false
	}
}

func (self JobState) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}

func (self *JobState) UnmarshalText(text []byte) error {
	return self.FromString(string(text))
}

func (self *JobState) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return self.FromString(v)
	case []byte:
		return self.FromString(string(v))
	default:
		return fmt.Errorf("Cannot scan %T into JobState", value)
	}
}

func (self JobState) Value() (driver.Value, error) {
	return self.String(), nil
}

type Phase string

const (
	PhaseProvision Phase = "provision"
	PhaseInstall   Phase = "install"
	PhaseTest      Phase = "test"
)

type StepResult struct {
	JobID     uuid.UUID     `json:"-"`
	Index     int           `json:"index"`
	Phase     Phase         `json:"phase"`
	Name      string        `json:"name"`
	Command   string        `json:"command"`
	ExitCode  int           `json:"exit_code"`
	Output    string        `json:"output,omitempty"`
	// Truncated is set when Output lost its beginning.
	Truncated bool          `json:"truncated,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

func (self StepResult) Succeeded() bool {
	return self.ExitCode == 0
}

type Job struct {
	ID         uuid.UUID    `json:"id"`
	RunID      uuid.UUID    `json:"run_id"`
	Entry      MatrixEntry  `json:"entry"`
	State      JobState     `json:"state"`
	Steps      []StepResult `json:"steps" db:"-"`
	Error      *string      `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

func NewJob(runID uuid.UUID, entry MatrixEntry) *Job {
	return &Job{
		ID:        uuid.New(),
		RunID:     runID,
		Entry:     entry,
		State:     JobStatePending,
		CreatedAt: time.Now().UTC(),
	}
}

// Transition moves the job along
// pending → provisioning → installing → testing → succeeded.
// Failing is allowed from any non-terminal state.
func (self *Job) Transition(to JobState) error {
	if self.State.Terminal() {
		return fmt.Errorf("%w: job %s is already %s", ErrInvalidTransition, self.ID, self.State)
	}

	if next, _ := self.State.next(); to != next && to != JobStateFailed {
		return fmt.Errorf("%w: job %s cannot go from %s to %s", ErrInvalidTransition, self.ID, self.State, to)
	}

	self.State = to
	if to.Terminal() {
		now := time.Now().UTC()
		self.FinishedAt = &now
	}
	return nil
}

// Fail moves the job to failed and records the cause.
func (self *Job) Fail(cause error) error {
	if err := self.Transition(JobStateFailed); err != nil {
		return err
	}
	msg := cause.Error()
	self.Error = &msg
	return nil
}

func (self *Job) Record(step StepResult) {
	step.JobID = self.ID
	step.Index = len(self.Steps)
	self.Steps = append(self.Steps, step)
}
