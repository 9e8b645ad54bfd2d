package gauntlet

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/domain"
)

// PlanCmd prints the jobs an event would start, without running them.
type PlanCmd struct {
	RunnerOpts
	EventOpts
}

type plannedStep struct {
	Phase domain.Phase `yaml:"phase"`
	Name  string       `yaml:"name"`
	Run   string       `yaml:"run"`
}

type plannedJob struct {
	Entry string        `yaml:"entry"`
	Env   []string      `yaml:"env"`
	Steps []plannedStep `yaml:"steps"`
}

type plan struct {
	Workflow  string       `yaml:"workflow"`
	Event     string       `yaml:"event"`
	Branch    string       `yaml:"branch"`
	Triggered bool         `yaml:"triggered"`
	Jobs      []plannedJob `yaml:"jobs,omitempty"`
}

func (cmd PlanCmd) Run(logger *zerolog.Logger) error {
	workflow, err := cmd.LoadWorkflow(logger)
	if err != nil {
		return err
	}

	event, err := cmd.ToEvent()
	if err != nil {
		return err
	}

	run := cmd.NewMatrixService(nil, service.NewLogRecorder(logger), logger).Plan(workflow, event)
	return writePlan(os.Stdout, workflow, event, run)
}

func newPlan(workflow domain.Workflow, event domain.Event, run *domain.Run) plan {
	p := plan{
		Workflow:  workflow.Name,
		Event:     event.Type.String(),
		Branch:    event.Branch(),
		Triggered: run != nil,
	}
	if run == nil {
		return p
	}

	for _, job := range run.Jobs {
		planned := plannedJob{Entry: job.Entry.String(), Env: job.Entry.Env()}

		interpreter := workflow.Provision.Interpreter
		if version, ok := job.Entry.Get(workflow.Provision.Axis); ok {
			interpreter += version
		}
		planned.Steps = append(planned.Steps, plannedStep{
			Phase: domain.PhaseProvision,
			Name:  "venv",
			Run:   interpreter + " -m venv venv",
		})

		for _, command := range workflow.Install {
			planned.Steps = append(planned.Steps, plannedStep{
				Phase: domain.PhaseInstall,
				Name:  command.Name,
				Run:   job.Entry.Expand(command.Run),
			})
		}

		planned.Steps = append(planned.Steps, plannedStep{
			Phase: domain.PhaseTest,
			Name:  workflow.Test.Name,
			Run:   job.Entry.Expand(workflow.Test.Run),
		})

		p.Jobs = append(p.Jobs, planned)
	}
	return p
}

func writePlan(w io.Writer, workflow domain.Workflow, event domain.Event, run *domain.Run) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newPlan(workflow, event, run)); err != nil {
		return err
	}
	return enc.Close()
}
