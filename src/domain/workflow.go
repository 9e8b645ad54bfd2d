package domain

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

type Workflow struct {
	Name      string                `json:"name" yaml:"name"`
	On        map[EventType]Trigger `json:"on" yaml:"on"`
	Matrix    Matrix                `json:"matrix" yaml:"matrix"`
	Provision Provision             `json:"provision" yaml:"provision"`
	Install   []Command             `json:"install" yaml:"install"`
	Test      Command               `json:"test" yaml:"test"`
	// Timeout bounds a whole job, e.g. "30m". Empty leaves it to the host.
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

func (self Workflow) JobTimeout() (time.Duration, error) {
	if self.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(self.Timeout)
}

type Trigger struct {
	Branches []string `json:"branches" yaml:"branches"`
}

// Matches reports whether branch is allowed.
// Entries are exact names or path.Match patterns.
func (self Trigger) Matches(branch string) bool {
	if branch == "" {
		return false
	}
	if slices.Contains(self.Branches, branch) {
		return true
	}
	for _, pattern := range self.Branches {
		if ok, err := path.Match(pattern, branch); err == nil && ok {
			return true
		}
	}
	return false
}

type Provision struct {
	// Interpreter is the executable prefix, e.g. "python" for "python3.8".
	Interpreter string `json:"interpreter" yaml:"interpreter"`
	// Axis names the matrix axis that selects the interpreter version.
	Axis string `json:"axis" yaml:"axis"`
}

type Command struct {
	Name string `json:"name" yaml:"name"`
	Run  string `json:"run" yaml:"run"`
}

type Axis struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

type Matrix []Axis

func (self Matrix) Axis(name string) (Axis, bool) {
	for _, axis := range self {
		if axis.Name == name {
			return axis, true
		}
	}
	return Axis{}, false
}

// Entries expands the cartesian product of all axes.
// The first axis varies slowest.
func (self Matrix) Entries() []MatrixEntry {
	if len(self) == 0 {
		return nil
	}

	entries := []MatrixEntry{{}}
	for _, axis := range self {
		next := make([]MatrixEntry, 0, len(entries)*len(axis.Values))
		for _, entry := range entries {
			for _, value := range axis.Values {
				e := make(MatrixEntry, len(entry), len(entry)+1)
				copy(e, entry)
				next = append(next, append(e, MatrixValue{Axis: axis.Name, Value: value}))
			}
		}
		entries = next
	}
	return entries
}

type MatrixValue struct {
	Axis  string `json:"axis"`
	Value string `json:"value"`
}

type MatrixEntry []MatrixValue

func (self MatrixEntry) Get(axis string) (string, bool) {
	for _, v := range self {
		if v.Axis == axis {
			return v.Value, true
		}
	}
	return "", false
}

func (self MatrixEntry) String() string {
	parts := make([]string, len(self))
	for i, v := range self {
		parts[i] = v.Axis + "=" + v.Value
	}
	return strings.Join(parts, ",")
}

// Env returns MATRIX_<AXIS>=<value> pairs.
func (self MatrixEntry) Env() []string {
	env := make([]string, len(self))
	for i, v := range self {
		env[i] = "MATRIX_" + envName(v.Axis) + "=" + v.Value
	}
	return env
}

var placeholderRegexp = regexp.MustCompile(`\$\{\{\s*matrix\.([A-Za-z0-9_-]+)\s*\}\}`)

// Expand substitutes ${{ matrix.<axis> }} placeholders.
// Unknown axes are left in place.
func (self MatrixEntry) Expand(s string) string {
	return placeholderRegexp.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderRegexp.FindStringSubmatch(match)[1]
		if value, ok := self.Get(name); ok {
			return value
		}
		return match
	})
}

func envName(axis string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(axis))
}

func (self Workflow) Validate() error {
	if len(self.On) == 0 {
		return fmt.Errorf("workflow %q has no triggers", self.Name)
	}
	if len(self.Matrix.Entries()) == 0 {
		return fmt.Errorf("workflow %q has an empty matrix", self.Name)
	}
	if self.Provision.Axis != "" {
		if _, ok := self.Matrix.Axis(self.Provision.Axis); !ok {
			return fmt.Errorf("workflow %q provisions from unknown matrix axis %q", self.Name, self.Provision.Axis)
		}
	}
	if _, err := self.JobTimeout(); err != nil {
		return fmt.Errorf("workflow %q has an invalid timeout: %w", self.Name, err)
	}
	if self.Test.Run == "" {
		return fmt.Errorf("workflow %q has no test command", self.Name)
	}
	return nil
}
