package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidTransition   = errors.New("invalid job state transition")
	ErrInterpreterNotFound = errors.New("interpreter not found")
)

type ErrorKind uint

const (
	ErrorKindProvisioning ErrorKind = iota
	ErrorKindInstallation
	ErrorKindTest
)

func (self ErrorKind) String() string {
	switch self {
	case ErrorKindProvisioning:
		return "provisioning"
	case ErrorKindInstallation:
		return "installation"
	case ErrorKindTest:
		return "test"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint(self))
	}
}

func (self ErrorKind) Phase() Phase {
	switch self {
	case ErrorKindProvisioning:
		return PhaseProvision
	case ErrorKindInstallation:
		return PhaseInstall
	default:
		return PhaseTest
	}
}

// JobError is why a job failed.
// ExitCode is -1 when the step never produced one.
type JobError struct {
	Kind     ErrorKind
	Step     string
	ExitCode int
	Err      error
}

func (e *JobError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s failed at %q: %s", e.Kind, e.Step, e.Err)
	default:
		return fmt.Sprintf("%s failed at %q: exit code %d", e.Kind, e.Step, e.ExitCode)
	}
}

func (e *JobError) Unwrap() error {
	return e.Err
}
