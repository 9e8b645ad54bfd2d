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
	"github.com/input-output-hk/gauntlet/src/domain/repository"
)

func TestShouldSaveRun(t *testing.T) {
	t.Parallel()

	// given
	run := &domain.Run{
		ID:        uuid.New(),
		Workflow:  "tests",
		Event:     domain.Event{Type: domain.EventTypePush, Ref: "refs/heads/main"},
		Status:    domain.RunStatusRunning,
		CreatedAt: time.Now().UTC(),
	}
	mock := mocks.BuildPool(t)
	mock.ExpectExec("INSERT INTO run").
		WithArgs(run.ID, run.Workflow, run.Event, "running", run.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	// when
	err := NewRunRepository(mock).Save(run)

	// then
	assert.NoError(t, err)
}

func TestShouldUpdateRun(t *testing.T) {
	t.Parallel()

	// given
	now := time.Now().UTC()
	run := &domain.Run{ID: uuid.New(), Status: domain.RunStatusFailed, FinishedAt: &now}
	mock := mocks.BuildPool(t)
	mock.ExpectExec("UPDATE run").
		WithArgs(run.ID, "failed", run.FinishedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	// when
	err := NewRunRepository(mock).Update(run)

	// then
	assert.NoError(t, err)
}

func TestShouldGetRunById(t *testing.T) {
	t.Parallel()

	// given
	now := time.Now().UTC()
	id := uuid.New()
	event := domain.Event{Type: domain.EventTypePullRequest, Ref: "refs/heads/x", BaseRef: "main"}
	mock := mocks.BuildPool(t)
	rows := pgxmock.NewRows([]string{"id", "workflow", "event", "status", "created_at", "finished_at"}).
		AddRow(id, "tests", event, "succeeded", now, &now)
	mock.ExpectQuery("SELECT (.+) FROM run WHERE id").WithArgs(id).WillReturnRows(rows)

	// when
	run, err := NewRunRepository(mock).GetById(id)

	// then
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "main", run.Event.Branch())
	assert.Equal(t, domain.RunStatusSucceeded, run.Status)
	assert.Equal(t, &now, run.FinishedAt)
}

func TestShouldGetNoRunForUnknownId(t *testing.T) {
	t.Parallel()

	// given
	id := uuid.New()
	mock := mocks.BuildPool(t)
	mock.ExpectQuery("SELECT (.+) FROM run WHERE id").WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "workflow", "event", "status", "created_at", "finished_at"}))

	// when
	run, err := NewRunRepository(mock).GetById(id)

	// then
	assert.NoError(t, err)
	assert.Nil(t, run)
}

func TestShouldGetAllRuns(t *testing.T) {
	t.Parallel()

	// given
	now := time.Now().UTC()
	page := repository.NewPage(0, 1)
	mock := mocks.BuildPool(t)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT (.+) FROM run ORDER BY created_at DESC LIMIT").
		WithArgs(1, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "workflow", "event", "status", "created_at", "finished_at"}).
			AddRow(uuid.New(), "tests", domain.Event{Type: domain.EventTypePush, Ref: "main"}, "running", now, (*time.Time)(nil)))

	// when
	runs, err := NewRunRepository(mock).GetAll(page)

	// then
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, 3, page.Total)
	assert.Nil(t, runs[0].FinishedAt)
}
