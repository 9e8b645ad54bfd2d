package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/gauntlet/src/config/mocks"
	"github.com/input-output-hk/gauntlet/src/domain"
)

func TestShouldSaveJob(t *testing.T) {
	t.Parallel()

	// given
	job := domain.NewJob(uuid.New(), domain.MatrixEntry{{Axis: "python-version", Value: "3.7"}})
	mock := mocks.BuildPool(t)
	mock.ExpectExec("INSERT INTO job").
		WithArgs(job.ID, job.RunID, job.Entry, "pending", job.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	// when
	err := NewJobRepository(mock).Save(job)

	// then
	assert.NoError(t, err)
}

func TestShouldUpdateJob(t *testing.T) {
	t.Parallel()

	// given
	job := domain.NewJob(uuid.New(), nil)
	require.NoError(t, job.Fail(&domain.JobError{Kind: domain.ErrorKindInstallation, Step: "install wheel", ExitCode: 1}))
	mock := mocks.BuildPool(t)
	mock.ExpectExec("UPDATE job").
		WithArgs(job.ID, "failed", job.Error, job.FinishedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	// when
	err := NewJobRepository(mock).Update(job)

	// then
	assert.NoError(t, err)
}

func TestShouldSaveStep(t *testing.T) {
	t.Parallel()

	// given
	step := domain.StepResult{
		JobID:     uuid.New(),
		Index:     2,
		Phase:     domain.PhaseInstall,
		Name:      "install project",
		Command:   "pip install '.[geoip,test]'",
		ExitCode:  1,
		Output:    "ERROR: No matching distribution found for geoip2",
		Truncated: true,
		StartedAt: time.Now().UTC(),
		Duration:  3 * time.Second,
	}
	mock := mocks.BuildPool(t)
	mock.ExpectExec("INSERT INTO step").
		WithArgs(step.JobID, 2, "install", step.Name, step.Command, 1, step.Output, true, step.StartedAt, int64(3*time.Second)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	// when
	err := NewJobRepository(mock).SaveStep(step)

	// then
	assert.NoError(t, err)
}

func TestShouldGetJobsByRunId(t *testing.T) {
	t.Parallel()

	// given
	now := time.Now().UTC()
	runId := uuid.New()
	mock := mocks.BuildPool(t)
	rows := pgxmock.NewRows([]string{"id", "run_id", "entry", "state", "error", "created_at", "finished_at"})
	for _, version := range []string{"3.7", "3.8", "3.9"} {
		rows.AddRow(uuid.New(), runId, domain.MatrixEntry{{Axis: "python-version", Value: version}}, "succeeded", (*string)(nil), now, &now)
	}
	mock.ExpectQuery("SELECT (.+) FROM job WHERE run_id").WithArgs(runId).WillReturnRows(rows)

	// when
	jobs, err := NewJobRepository(mock).GetByRunId(runId)

	// then
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	v, _ := jobs[2].Entry.Get("python-version")
	assert.Equal(t, "3.9", v)
	assert.Equal(t, domain.JobStateSucceeded, jobs[0].State)
}
