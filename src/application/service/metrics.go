package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/version"

	"github.com/input-output-hk/gauntlet/src/domain"
)

// Metrics is safe to use as a nil pointer, which records nothing.
type Metrics struct {
	events       *prometheus.CounterVec
	runs         *prometheus.CounterVec
	jobs         *prometheus.CounterVec
	jobsActive   prometheus.Gauge
	stepDuration *prometheus.HistogramVec

	active sync.Map
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	self := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gauntlet",
			Name:      "events_total",
			Help:      "Repository events evaluated, by type and whether they triggered a run.",
		}, []string{"type", "triggered"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gauntlet",
			Name:      "runs_total",
			Help:      "Finished runs by workflow and status.",
		}, []string{"workflow", "status"}),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gauntlet",
			Name:      "jobs_total",
			Help:      "Finished jobs by final state.",
		}, []string{"state"}),
		jobsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gauntlet",
			Name:      "jobs_active",
			Help:      "Jobs that are neither pending nor finished.",
		}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gauntlet",
			Name:      "step_duration_seconds",
			Help:      "Duration of job steps by phase.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		}, []string{"phase", "success"}),
	}

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gauntlet",
		Name:      "build_info",
		Help:      "Version of the running binary.",
	}, []string{"version", "revision"})
	buildInfo.WithLabelValues(version.Version, version.Revision).Set(1)

	for _, c := range []prometheus.Collector{self.events, self.runs, self.jobs, self.jobsActive, self.stepDuration, buildInfo} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return self, nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (self *Metrics) observeEvent(event domain.Event, triggered bool) {
	if self == nil {
		return
	}
	self.events.WithLabelValues(event.Type.String(), boolLabel(triggered)).Inc()
}

func (self *Metrics) RunStarted(*domain.Run) error {
	return nil
}

func (self *Metrics) JobChanged(job *domain.Job) error {
	if self == nil {
		return nil
	}
	switch {
	case job.State == domain.JobStateProvisioning:
		self.active.Store(job.ID, struct{}{})
		self.jobsActive.Inc()
	case job.State.Terminal():
		if _, wasActive := self.active.LoadAndDelete(job.ID); wasActive {
			self.jobsActive.Dec()
		}
		self.jobs.WithLabelValues(job.State.String()).Inc()
	}
	return nil
}

func (self *Metrics) StepFinished(_ *domain.Job, step domain.StepResult) error {
	if self == nil {
		return nil
	}
	self.stepDuration.WithLabelValues(string(step.Phase), boolLabel(step.Succeeded())).Observe(step.Duration.Seconds())
	return nil
}

func (self *Metrics) RunFinished(run *domain.Run) error {
	if self == nil {
		return nil
	}
	self.runs.WithLabelValues(run.Workflow, run.Status.String()).Inc()
	return nil
}
