//go:build !unix

package util

import "os/exec"

// KillProcessGroup leaves the default cancellation in place,
// which only kills the process itself.
func KillProcessGroup(cmd *exec.Cmd) {}
