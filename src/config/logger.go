package config

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SupervisorLogger adapts zerolog to the oversight logger interface.
type SupervisorLogger struct {
	*zerolog.Logger
}

func (l *SupervisorLogger) Printf(format string, v ...interface{}) {
	l.Logger.Printf(format, v...)
}
func (l *SupervisorLogger) Println(v ...interface{}) {
	l.Logger.Print(v...)
}

type LoggerConfig struct {
	// Print human-readable output to console
	ConsoleLoggingEnabled bool

	DebugModeEnabled bool

	// FileLoggingEnabled makes the runner log to a file
	// the fields below can be skipped if this value is false!
	FileLoggingEnabled bool
	Directory          string
	Filename           string
	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int
	// MaxBackups the max number of rolled files to keep
	MaxBackups int
	// MaxAge the max age in days to keep a logfile
	MaxAge int
}

func buildLoggerConfig(debugModeEnabled bool) (*LoggerConfig, error) {
	conf := LoggerConfig{
		DebugModeEnabled: debugModeEnabled,
	}

	if v, err := GetenvBool("CONSOLE_LOGGING_ENABLED"); err != nil {
		return nil, errors.WithMessage(err, "CONSOLE_LOGGING_ENABLED")
	} else {
		conf.ConsoleLoggingEnabled = *v
	}

	if v, err := GetenvBool("FILE_LOGGING_ENABLED"); err != nil {
		return nil, errors.WithMessage(err, "FILE_LOGGING_ENABLED")
	} else if *v {
		conf.FileLoggingEnabled = true
		conf.Directory = GetenvStrDefault("LOGS_DIRECTORY", "logs")
		conf.Filename = GetenvStrDefault("LOGS_FILE_NAME", "gauntlet.log")

		for key, dst := range map[string]*int{
			"LOGS_MAX_SIZE":    &conf.MaxSize,
			"LOGS_MAX_BACKUPS": &conf.MaxBackups,
			"LOGS_MAX_AGE":     &conf.MaxAge,
		} {
			v, err := GetenvInt(key)
			if err != nil {
				return nil, errors.WithMessage(err, key)
			}
			if *v == 0 {
				*dst = 10
			} else {
				*dst = *v
			}
		}
	}

	return &conf, nil
}

func ConfigureLogger(debugModeEnabled bool) (*zerolog.Logger, error) {
	config, err := buildLoggerConfig(debugModeEnabled)
	if err != nil {
		return nil, errors.WithMessage(err, "Invalid logger configuration")
	}

	var writers []io.Writer
	if config.ConsoleLoggingEnabled {
		writers = append(writers, zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = time.RFC3339
		}))
	} else {
		writers = append(writers, os.Stderr)
	}
	if config.FileLoggingEnabled {
		if w, err := newRollingFile(config); err != nil {
			return nil, err
		} else {
			writers = append(writers, w)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger()

	if debugModeEnabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	logger.Debug().
		Bool("consoleLogging", config.ConsoleLoggingEnabled).
		Bool("fileLogging", config.FileLoggingEnabled).
		Str("logDirectory", config.Directory).
		Str("fileName", config.Filename).
		Int("maxSizeMB", config.MaxSize).
		Int("maxBackups", config.MaxBackups).
		Int("maxAgeInDays", config.MaxAge).
		Msg("logging configured")

	return &logger, nil
}

func newRollingFile(config *LoggerConfig) (io.Writer, error) {
	if err := os.MkdirAll(config.Directory, 0o744); err != nil {
		return nil, errors.WithMessagef(err, "Could not create log directory %q", config.Directory)
	}

	return &lumberjack.Logger{
		Filename:   path.Join(config.Directory, config.Filename),
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}, nil
}
