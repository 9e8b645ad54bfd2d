package application

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	getter "github.com/hashicorp/go-getter/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/config"
)

// Workspace hands every job its own directory with a private copy of the source tree.
type Workspace interface {
	// Prepare returns the job directory and the source checkout inside it.
	Prepare(ctx context.Context, jobId uuid.UUID, source string) (dir, src string, err error)
	Cleanup(dir string) error
}

type workspace struct {
	logger zerolog.Logger
	root   string
	client *getter.Client
}

// NewWorkspace places job directories under root,
// falling back to $GAUNTLET_WORK_DIR and then the XDG cache directory.
func NewWorkspace(root string, logger *zerolog.Logger) Workspace {
	if root == "" {
		root = config.GetenvStr("GAUNTLET_WORK_DIR")
	}
	if root == "" {
		root = filepath.Join(xdg.CacheHome, "gauntlet", "jobs")
	}
	return &workspace{
		logger: logger.With().Str("component", "Workspace").Logger(),
		root:   root,
		client: getter.DefaultClient,
	}
}

func (self *workspace) Prepare(ctx context.Context, jobId uuid.UUID, source string) (dir, src string, err error) {
	dir = filepath.Join(self.root, jobId.String())
	src = filepath.Join(dir, "src")

	if err = os.MkdirAll(dir, 0o755); err != nil {
		err = errors.WithMessagef(err, "Could not create workspace %q", dir)
		return
	}

	pwd, err := os.Getwd()
	if err != nil {
		return
	}
	if source == "" {
		source = pwd
	}

	logger := self.logger.With().Str("source", source).Str("dst", src).Logger()
	logger.Debug().Msg("Fetching source")

	result, err := self.client.Get(ctx, &getter.Request{
		Src:     source,
		Dst:     src,
		Pwd:     pwd,
		GetMode: getter.ModeAny,
		Copy:    true,
	})
	if err != nil {
		err = errors.WithMessagef(err, "Could not fetch %q", source)
		return
	}
	if result.Dst != src {
		src = result.Dst
	}

	logger.Debug().Msg("Fetched source")
	return
}

func (self *workspace) Cleanup(dir string) error {
	self.logger.Debug().Str("dir", dir).Msg("Removing workspace")
	return errors.WithMessagef(os.RemoveAll(dir), "Could not remove workspace %q", dir)
}
