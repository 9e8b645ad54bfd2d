package gauntlet

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/domain"
)

var ErrRunFailed = errors.New("Run failed")

// RunCmd evaluates an event and runs the matrix on this machine without a database.
type RunCmd struct {
	RunnerOpts
	EventOpts
}

func (cmd RunCmd) Run(ctx context.Context, logger *zerolog.Logger) error {
	workflow, err := cmd.LoadWorkflow(logger)
	if err != nil {
		return err
	}

	event, err := cmd.ToEvent()
	if err != nil {
		return err
	}

	matrixService := cmd.NewMatrixService(nil, service.NewLogRecorder(logger), logger)

	run, err := matrixService.Dispatch(ctx, workflow, event)
	if err != nil {
		return err
	}
	if run == nil {
		fmt.Fprintf(os.Stdout, "%s to %q does not trigger workflow %q\n", event.Type, event.Branch(), workflow.Name)
		return nil
	}

	if err := printRun(os.Stdout, run); err != nil {
		return err
	}

	if run.Status != domain.RunStatusSucceeded {
		return ErrRunFailed
	}
	return nil
}

func printRun(w io.Writer, run *domain.Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTRY\tSTATE\tSTEPS\tERROR")
	for _, job := range run.Jobs {
		jobErr := ""
		if job.Error != nil {
			jobErr = *job.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", job.Entry, job.State, len(job.Steps), jobErr)
	}
	fmt.Fprintf(tw, "\nrun %s %s\n", run.ID, run.Status)
	return tw.Flush()
}
