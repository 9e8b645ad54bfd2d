package gauntlet

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application"
	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
)

// RunnerOpts are the flags shared by every command that executes jobs.
type RunnerOpts struct {
	Workflow      string `arg:"--workflow" help:"workflow definition (YAML), defaults to $GAUNTLET_WORKFLOW, then $XDG_CONFIG_HOME/gauntlet/workflow.yaml, then the built-in one"`
	WorkDir       string `arg:"--work-dir,env:GAUNTLET_WORK_DIR" help:"where job workspaces are created"`
	Parallelism   int    `arg:"--parallelism,env:GAUNTLET_PARALLELISM" help:"maximum number of jobs running at once, 0 for no limit"`
	KeepWorkspace bool   `arg:"--keep-workspace" help:"do not delete job workspaces when jobs finish"`
}

func (opts RunnerOpts) LoadWorkflow(logger *zerolog.Logger) (domain.Workflow, error) {
	return config.LoadWorkflow(opts.Workflow, logger)
}

func (opts RunnerOpts) NewMatrixService(metrics *service.Metrics, recorder service.Recorder, logger *zerolog.Logger) service.MatrixService {
	jobService := service.NewJobService(
		application.NewShell(logger),
		application.NewWorkspace(opts.WorkDir, logger),
		recorder,
		opts.KeepWorkspace,
		logger,
	)
	return service.NewMatrixService(service.NewTriggerService(metrics, logger), jobService, recorder, opts.Parallelism, logger)
}

// EventOpts describe an event given on the command line.
type EventOpts struct {
	Event  string `arg:"--event" default:"push" help:"push or pull_request"`
	Branch string `arg:"--branch" default:"main" help:"pushed branch, or base branch of the pull request"`
	Source string `arg:"--source" help:"go-getter URL of the tree to test, defaults to the working directory"`
}

func (opts EventOpts) ToEvent() (event domain.Event, err error) {
	if err = event.Type.FromString(opts.Event); err != nil {
		return
	}

	ref := "refs/heads/" + opts.Branch
	switch event.Type {
	case domain.EventTypePush:
		event.Ref = ref
	case domain.EventTypePullRequest:
		event.BaseRef = ref
	}
	event.Source = opts.Source

	if err = event.Validate(); err != nil {
		err = fmt.Errorf("Invalid event: %w", err)
	}
	return
}
