package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/input-output-hk/gauntlet/src/domain"
)

//go:embed workflow.cue
var workflowSchema string

//go:embed workflow.yaml
var DefaultWorkflowYAML []byte

// CUE keeps global state that is not safe for concurrent use.
var cueMutex = &sync.Mutex{}

// LoadWorkflow picks the first workflow definition that exists:
// the given path, $GAUNTLET_WORKFLOW, $XDG_CONFIG_HOME/gauntlet/workflow.yaml,
// and finally the built-in default.
func LoadWorkflow(path string, logger *zerolog.Logger) (domain.Workflow, error) {
	if path == "" {
		path = GetenvStr("GAUNTLET_WORKFLOW")
	}
	if path == "" {
		if found, err := xdg.SearchConfigFile("gauntlet/workflow.yaml"); err == nil {
			path = found
		}
	}

	if path == "" {
		logger.Debug().Msg("Using built-in workflow")
		return ParseWorkflow(DefaultWorkflowYAML)
	}

	logger.Debug().Str("path", path).Msg("Loading workflow")
	src, err := os.ReadFile(path)
	if err != nil {
		return domain.Workflow{}, errors.WithMessagef(err, "Could not read workflow %q", path)
	}

	workflow, err := ParseWorkflow(src)
	return workflow, errors.WithMessagef(err, "Invalid workflow %q", path)
}

// ParseWorkflow decodes a YAML definition, checks it against the schema,
// fills in defaults and validates the result.
func ParseWorkflow(src []byte) (workflow domain.Workflow, err error) {
	var data any
	if err = yaml.Unmarshal(src, &data); err != nil {
		err = errors.WithMessage(err, "Could not parse YAML")
		return
	}
	if data == nil {
		err = errors.New("Empty workflow definition")
		return
	}

	resolved, err := resolveWorkflow(data)
	if err != nil {
		return
	}

	if err = json.Unmarshal(resolved, &workflow); err != nil {
		err = errors.WithMessage(err, "Could not decode workflow")
		return
	}

	err = workflow.Validate()
	return
}

func resolveWorkflow(data any) ([]byte, error) {
	cueMutex.Lock()
	defer cueMutex.Unlock()

	ctx := cuecontext.New()

	schema := ctx.CompileString(workflowSchema, cue.Filename("workflow.cue"))
	if err := schema.Err(); err != nil {
		return nil, errors.WithMessage(err, "Invalid workflow schema")
	}

	value := ctx.Encode(data)
	if err := value.Err(); err != nil {
		return nil, errors.WithMessage(err, "Could not encode workflow")
	}

	unified := schema.LookupPath(cue.ParsePath("#Workflow")).Unify(value)
	if err := unified.Validate(); err != nil {
		return nil, errors.New(cueerrors.Details(err, nil))
	}

	b, err := unified.MarshalJSON()
	if err != nil {
		return nil, errors.New(cueerrors.Details(err, nil))
	}
	return b, nil
}
