package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultDir        = "logs"
	fileBufferSize    = 32 * 1024
	consoleBufferSize = 1024
)

var componentPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type options struct {
	dir     string
	level   string
	console bool
}

type Option func(*options)

func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

func WithoutConsole() Option {
	return func(o *options) { o.console = false }
}

// NewLogger writes JSON lines to <dir>/<component>.log and mirrors them to stdout.
// The returned func flushes and closes both writers.
func NewLogger(component string, opts ...Option) (*logrus.Logger, func()) {
	o := &options{
		dir:     defaultDir,
		level:   os.Getenv("LOG_LEVEL"),
		console: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(o.level))

	var closers []func()
	if o.console {
		hook := NewAsyncConsoleHook(consoleBufferSize)
		logger.AddHook(hook)
		closers = append(closers, hook.Close)
	}

	writer, err := openLogFile(o.dir, component)
	if err != nil {
		logger.SetOutput(os.Stderr)
		logger.WithError(err).Warn("file logging disabled")
		if o.console {
			// stderr already carries every entry
			logger.ReplaceHooks(make(logrus.LevelHooks))
		}
	} else {
		logger.SetOutput(writer)
		closers = append(closers, writer.Close)
	}

	return logger, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

func openLogFile(dir, component string) (*AsyncFileWriter, error) {
	component = strings.ToLower(component)
	if !componentPattern.MatchString(component) {
		return nil, fmt.Errorf("invalid log component %q", component)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return NewAsyncFileWriter(filepath.Join(dir, component+".log"), fileBufferSize)
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
