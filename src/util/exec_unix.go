//go:build unix

package util

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// KillProcessGroup starts cmd in a process group of its own
// and makes cancellation kill the whole group, not only its leader.
func KillProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
