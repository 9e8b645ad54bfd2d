package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

type WebConfig struct {
	Listen string
	// WatchInterval is how often watchers get a ping to keep connections alive.
	WatchInterval time.Duration
	// Token guards POST /api/event when set.
	Token string
}

func NewWebConfig(listen, tokenFile string) (WebConfig, error) {
	self := WebConfig{Listen: listen, WatchInterval: 30 * time.Second}

	if tokenFile != "" {
		if v, err := os.ReadFile(tokenFile); err != nil {
			return self, errors.WithMessage(err, "While reading web API token")
		} else {
			self.Token = string(trimNewline(v))
		}
	}

	return self, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
