package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application"
	"github.com/input-output-hk/gauntlet/src/domain"
)

type JobService interface {
	// Execute runs the job through provision, install and test.
	// A failing job is not an error: its outcome is on the job itself.
	// Errors are returned only when the recorder fails.
	Execute(ctx context.Context, workflow domain.Workflow, job *domain.Job, source string) error
}

type jobService struct {
	logger    zerolog.Logger
	shell     application.Shell
	workspace application.Workspace
	recorder  Recorder
	keep      bool
}

func NewJobService(shell application.Shell, workspace application.Workspace, recorder Recorder, keepWorkspace bool, logger *zerolog.Logger) JobService {
	return &jobService{
		logger:    logger.With().Str("component", "JobService").Logger(),
		shell:     shell,
		workspace: workspace,
		recorder:  recorder,
		keep:      keepWorkspace,
	}
}

// jobRun is the state of one Execute call.
type jobRun struct {
	*jobService
	logger zerolog.Logger
	job    *domain.Job
	dir    string
	src    string
	env    []string
}

func (self *jobService) Execute(ctx context.Context, workflow domain.Workflow, job *domain.Job, source string) error {
	r := &jobRun{
		jobService: self,
		logger:     self.logger.With().Stringer("job-id", job.ID).Stringer("entry", job.Entry).Logger(),
		job:        job,
	}

	if timeout, _ := workflow.JobTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := r.execute(ctx, workflow, source)
	if err != nil && !job.State.Terminal() {
		r.abandon(err)
	}
	return err
}

func (self *jobRun) execute(ctx context.Context, workflow domain.Workflow, source string) error {
	if err := self.transition(domain.JobStateProvisioning); err != nil {
		return err
	}

	jobErr, err := self.provision(ctx, workflow, source)
	if self.dir != "" && !self.keep {
		defer func() {
			if err := self.workspace.Cleanup(self.dir); err != nil {
				self.logger.Warn().Err(err).Msg("Could not clean up workspace")
			}
		}()
	}
	if err != nil || jobErr != nil {
		return self.fail(jobErr, err)
	}

	if err := self.transition(domain.JobStateInstalling); err != nil {
		return err
	}
	for _, command := range workflow.Install {
		if jobErr, err := self.step(ctx, domain.ErrorKindInstallation, command.Name, self.job.Entry.Expand(command.Run), self.src); err != nil || jobErr != nil {
			return self.fail(jobErr, err)
		}
	}

	if err := self.transition(domain.JobStateTesting); err != nil {
		return err
	}
	if jobErr, err := self.step(ctx, domain.ErrorKindTest, workflow.Test.Name, self.job.Entry.Expand(workflow.Test.Run), self.src); err != nil || jobErr != nil {
		return self.fail(jobErr, err)
	}

	return self.transition(domain.JobStateSucceeded)
}

// abandon fails a job that stopped because recording broke,
// so that it does not stay in an intermediate state.
// Recording the failure may break too, which is only logged.
func (self *jobRun) abandon(cause error) {
	if err := self.job.Fail(cause); err != nil {
		self.logger.Err(err).Msg("Could not fail abandoned job")
		return
	}
	if err := self.recorder.JobChanged(self.job); err != nil {
		self.logger.Err(err).Msg("Could not record abandoned job")
	}
}

// provision prepares the workspace, locates the interpreter
// for this matrix entry and creates a virtual environment from it.
func (self *jobRun) provision(ctx context.Context, workflow domain.Workflow, source string) (*domain.JobError, error) {
	started := time.Now()
	dir, src, err := self.workspace.Prepare(ctx, self.job.ID, source)
	self.dir = dir
	self.src = src
	step := domain.StepResult{
		Phase:     domain.PhaseProvision,
		Name:      "checkout",
		Command:   source,
		StartedAt: started.UTC(),
		Duration:  time.Since(started),
	}
	if err != nil {
		step.ExitCode = -1
		step.Output = err.Error()
	}
	if recErr := self.record(step); recErr != nil {
		return nil, recErr
	}
	if err != nil {
		return &domain.JobError{Kind: domain.ErrorKindProvisioning, Step: step.Name, ExitCode: -1, Err: err}, nil
	}

	version := ""
	if workflow.Provision.Axis != "" {
		version, _ = self.job.Entry.Get(workflow.Provision.Axis)
	}
	name := workflow.Provision.Interpreter + version

	started = time.Now()
	interpreter, err := self.shell.LookPath(name)
	if err != nil {
		self.logger.Warn().Str("interpreter", name).Err(err).Msg("Interpreter not found")
		if recErr := self.record(domain.StepResult{
			Phase:     domain.PhaseProvision,
			Name:      "interpreter",
			Command:   name,
			ExitCode:  -1,
			Output:    err.Error(),
			StartedAt: started.UTC(),
			Duration:  time.Since(started),
		}); recErr != nil {
			return nil, recErr
		}
		return &domain.JobError{
			Kind:     domain.ErrorKindProvisioning,
			Step:     "interpreter",
			ExitCode: -1,
			Err:      errors.WithMessage(domain.ErrInterpreterNotFound, name),
		}, nil
	}

	venv := filepath.Join(self.dir, "venv")
	self.env = append([]string{
		"VIRTUAL_ENV=" + venv,
		"PATH=" + filepath.Join(venv, "bin") + string(os.PathListSeparator) + os.Getenv("PATH"),
	}, self.job.Entry.Env()...)

	return self.step(ctx, domain.ErrorKindProvisioning, "venv", fmt.Sprintf("%s -m venv %s", quote(interpreter), quote(venv)), self.dir)
}

// step runs one script and records it.
// A non-zero exit is returned as a JobError of the given kind.
func (self *jobRun) step(ctx context.Context, kind domain.ErrorKind, name, script, dir string) (*domain.JobError, error) {
	if name == "" {
		name = script
	}
	self.logger.Debug().Str("phase", string(kind.Phase())).Str("step", name).Msg("Running step")

	started := time.Now()
	result, runErr := self.shell.Run(ctx, application.ShellCommand{
		Script: script,
		Dir:    dir,
		Env:    self.env,
	})

	step := domain.StepResult{
		Phase:     kind.Phase(),
		Name:      name,
		Command:   script,
		ExitCode:  result.ExitCode,
		Output:    result.Output,
		Truncated: result.Truncated,
		StartedAt: started.UTC(),
		Duration:  time.Since(started),
	}
	if runErr != nil && step.ExitCode == 0 {
		step.ExitCode = -1
	}
	if err := self.record(step); err != nil {
		return nil, err
	}

	switch {
	case runErr != nil:
		return &domain.JobError{Kind: kind, Step: name, ExitCode: step.ExitCode, Err: runErr}, nil
	case !step.Succeeded():
		return &domain.JobError{Kind: kind, Step: name, ExitCode: step.ExitCode}, nil
	}
	return nil, nil
}

func (self *jobRun) record(step domain.StepResult) error {
	self.job.Record(step)
	return errors.WithMessage(
		self.recorder.StepFinished(self.job, self.job.Steps[len(self.job.Steps)-1]),
		"Could not record step",
	)
}

func (self *jobRun) transition(to domain.JobState) error {
	if err := self.job.Transition(to); err != nil {
		return err
	}
	self.logger.Debug().Stringer("state", to).Msg("Job changed state")
	return errors.WithMessage(self.recorder.JobChanged(self.job), "Could not record job state")
}

// fail finishes the job as failed unless err says the recorder broke.
func (self *jobRun) fail(jobErr *domain.JobError, err error) error {
	if err != nil {
		return err
	}
	self.logger.Info().Err(jobErr).Msg("Job failed")
	if err := self.job.Fail(jobErr); err != nil {
		return err
	}
	return errors.WithMessage(self.recorder.JobChanged(self.job), "Could not record job state")
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
