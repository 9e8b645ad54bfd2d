package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/gauntlet/src/domain"
)

func TestMetricsTrackJobsAndRuns(t *testing.T) {
	t.Parallel()

	// given
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	run := domain.NewRun(testWorkflow(), pushTo("main"))
	job := run.Jobs[0]

	// when
	require.NoError(t, job.Transition(domain.JobStateProvisioning))
	require.NoError(t, metrics.JobChanged(job))
	active := testutil.ToFloat64(metrics.jobsActive)

	require.NoError(t, metrics.StepFinished(job, domain.StepResult{Phase: domain.PhaseProvision, Duration: time.Second}))
	require.NoError(t, job.Transition(domain.JobStateFailed))
	require.NoError(t, metrics.JobChanged(job))
	run.Finish()
	require.NoError(t, metrics.RunFinished(run))

	// then
	assert.Equal(t, 1.0, active)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.jobsActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.jobs.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.runs.WithLabelValues("tests", "failed")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.stepDuration))
}

func TestMetricsCountEvents(t *testing.T) {
	t.Parallel()

	// given
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	triggerService := NewTriggerService(metrics, &log.Logger)

	// when
	triggerService.Evaluate(testWorkflow(), pushTo("main"))
	triggerService.Evaluate(testWorkflow(), pushTo("feature/x"))
	triggerService.Evaluate(testWorkflow(), pushTo("gh-pages"))

	// then
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.events.WithLabelValues("push", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.events.WithLabelValues("push", "false")))
}

func TestNilMetricsRecordNothing(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	run := domain.NewRun(testWorkflow(), pushTo("main"))

	assert.NotPanics(t, func() {
		metrics.observeEvent(run.Event, true)
		_ = metrics.JobChanged(run.Jobs[0])
		_ = metrics.StepFinished(run.Jobs[0], domain.StepResult{})
		_ = metrics.RunFinished(run)
	})
}
