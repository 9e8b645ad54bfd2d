package application

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/util"
)

// Output of a step is cut to its last MaxOutputSize bytes.
const MaxOutputSize = 64 * 1024

// WaitDelay bounds how long output is still read after the script
// exited or was killed, in case something it started keeps it open.
const WaitDelay = 5 * time.Second

type ShellCommand struct {
	Script string
	Dir    string
	// Env is added on top of the runner's own environment.
	Env []string
}

type ShellResult struct {
	ExitCode  int
	Output    string
	Truncated bool
}

// Shell is how jobs reach the host: locating interpreters and running scripts.
type Shell interface {
	LookPath(name string) (string, error)
	// Run returns an error only if the script could not be run at all.
	// A script that exits non-zero is reported through ShellResult.ExitCode.
	Run(context.Context, ShellCommand) (ShellResult, error)
}

type shell struct {
	logger zerolog.Logger
}

func NewShell(logger *zerolog.Logger) Shell {
	return &shell{logger: logger.With().Str("component", "Shell").Logger()}
}

func (self *shell) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (self *shell) Run(ctx context.Context, command ShellCommand) (result ShellResult, err error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command.Script)
	cmd.Dir = command.Dir
	cmd.Env = append(os.Environ(), command.Env...)
	cmd.WaitDelay = WaitDelay
	util.KillProcessGroup(cmd)

	logger := self.logger.With().Str("script", command.Script).Str("dir", command.Dir).Logger()
	logger.Debug().Msg("Running script")

	output := util.NewTailBuffer(MaxOutputSize)
	runErr := util.RunCombined(cmd, output, func(line string) {
		logger.Trace().Msg(line)
	})

	result.ExitCode = util.ExitCode(runErr)
	result.Output = util.CleanOutput(output.Bytes())
	result.Truncated = output.Truncated()

	switch {
	case runErr == nil:
	case ctx.Err() != nil:
		err = ctx.Err()
	case result.ExitCode == -1:
		err = runErr
	}

	logger.Debug().Int("exit-code", result.ExitCode).Msg("Script finished")
	return
}
