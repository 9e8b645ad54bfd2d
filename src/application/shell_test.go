package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShell() Shell {
	logger := zerolog.Nop()
	return NewShell(&logger)
}

func TestShellRunSuccess(t *testing.T) {
	t.Parallel()

	// given
	dir := t.TempDir()

	// when
	result, err := buildShell().Run(context.Background(), ShellCommand{
		Script: `echo "$GREETING from $(pwd)"; echo warning >&2`,
		Dir:    dir,
		Env:    []string{"GREETING=hello"},
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.False(t, result.Truncated)
	assert.Contains(t, result.Output, "hello from ")
	assert.Contains(t, result.Output, "warning\n")
}

func TestShellRunNonZeroExit(t *testing.T) {
	t.Parallel()

	// when
	result, err := buildShell().Run(context.Background(), ShellCommand{Script: "echo broken; exit 3"})

	// then
	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "broken\n", result.Output)
}

func TestShellRunLongLineSucceeds(t *testing.T) {
	t.Parallel()

	// when
	result, err := buildShell().Run(context.Background(), ShellCommand{
		Script: `head -c 2000000 /dev/zero | tr '\0' 'x'; exit 0`,
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.True(t, result.Truncated)
	assert.Equal(t, strings.Repeat("x", MaxOutputSize), result.Output)
}

func TestShellRunKillsChildrenOnTimeout(t *testing.T) {
	t.Parallel()

	// given
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	started := time.Now()

	// when
	result, err := buildShell().Run(ctx, ShellCommand{Script: "sleep 3; true"})

	// then
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, -1, result.ExitCode)
	assert.Less(t, time.Since(started), 2*time.Second)
}

func TestShellLookPath(t *testing.T) {
	t.Parallel()

	shell := buildShell()

	path, err := shell.LookPath("sh")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = shell.LookPath("python0.0-does-not-exist")
	assert.Error(t, err)
}
