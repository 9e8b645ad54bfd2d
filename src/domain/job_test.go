package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobHappyPath(t *testing.T) {
	t.Parallel()

	// given
	job := NewJob(uuid.New(), MatrixEntry{{Axis: "python-version", Value: "3.8"}})

	// when
	for _, state := range []JobState{JobStateProvisioning, JobStateInstalling, JobStateTesting, JobStateSucceeded} {
		require.NoError(t, job.Transition(state))
	}

	// then
	assert.Equal(t, JobStateSucceeded, job.State)
	assert.NotNil(t, job.FinishedAt)
	assert.Nil(t, job.Error)
}

func TestJobTransitions(t *testing.T) {
	t.Parallel()

	tries := map[string]struct {
		from  JobState
		to    JobState
		valid bool
	}{
		"skip provisioning":     {JobStatePending, JobStateInstalling, false},
		"skip installing":       {JobStateProvisioning, JobStateTesting, false},
		"succeed before tests":  {JobStateInstalling, JobStateSucceeded, false},
		"backwards":             {JobStateTesting, JobStateInstalling, false},
		"repeat":                {JobStateInstalling, JobStateInstalling, false},
		"fail while pending":    {JobStatePending, JobStateFailed, true},
		"fail while installing": {JobStateInstalling, JobStateFailed, true},
		"fail after success":    {JobStateSucceeded, JobStateFailed, false},
		"succeed after failure": {JobStateFailed, JobStateSucceeded, false},
		"test after install":    {JobStateInstalling, JobStateTesting, true},
	}

	for name, try := range tries {
		try := try
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			job := &Job{ID: uuid.New(), State: try.from}
			err := job.Transition(try.to)

			if try.valid {
				assert.NoError(t, err)
				assert.Equal(t, try.to, job.State)
			} else {
				assert.True(t, errors.Is(err, ErrInvalidTransition), "unexpected error: %v", err)
				assert.Equal(t, try.from, job.State)
			}
		})
	}
}

func TestJobFailRecordsCause(t *testing.T) {
	t.Parallel()

	// given
	job := NewJob(uuid.New(), nil)
	require.NoError(t, job.Transition(JobStateProvisioning))
	cause := &JobError{Kind: ErrorKindProvisioning, Step: "python3.7", ExitCode: -1, Err: ErrInterpreterNotFound}

	// when
	err := job.Fail(cause)

	// then
	assert.NoError(t, err)
	assert.Equal(t, JobStateFailed, job.State)
	if assert.NotNil(t, job.Error) {
		assert.Contains(t, *job.Error, "provisioning failed")
	}
}

func TestJobRecordIndexesSteps(t *testing.T) {
	t.Parallel()

	job := NewJob(uuid.New(), nil)
	job.Record(StepResult{Phase: PhaseProvision})
	job.Record(StepResult{Phase: PhaseInstall})

	assert.Equal(t, 0, job.Steps[0].Index)
	assert.Equal(t, 1, job.Steps[1].Index)
	assert.Equal(t, job.ID, job.Steps[1].JobID)
}

func TestJobStateScan(t *testing.T) {
	t.Parallel()

	var state JobState
	assert.NoError(t, state.Scan("testing"))
	assert.Equal(t, JobStateTesting, state)
	assert.Error(t, state.Scan(42))
	assert.Error(t, state.Scan("unknown"))
}
