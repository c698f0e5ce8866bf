package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

var log *Logger

// Logger ...
type Logger struct {
	*logrus.Logger
}

func init() {
	log = &Logger{
		logrus.New(),
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(WarnLevel)
}

// Instance returns the underlying logger instance
func Instance() *logrus.Logger {
	return log.Logger
}

// IsDebug returns whether debug level logs are enabled
func IsDebug() bool {
	return log.IsLevelEnabled(DebugLevel)
}

// SetLevel sets the logging level of the logger instance.
func SetLevel(v string) error {
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return errors.Wrapf(err, "log level %q", v)
	}
	log.Logger.SetLevel(level)
	return nil
}

// SetOutput sets the logging output of the logger instance. Anything other
// than none, stdout or stderr is treated as a file path to append to.
func SetOutput(v string) (io.Closer, error) {
	switch v {
	case "none":
		log.Logger.SetOutput(io.Discard)
	case "stdout":
		log.Logger.SetOutput(os.Stdout)
	case "", "stderr":
		log.Logger.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(v, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "opening log file")
		}
		log.Logger.SetOutput(f)
		return f, nil
	}
	return nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetFormat sets the logging format of the logger instance.
func SetFormat(v string) error {
	switch strings.ToLower(v) {
	case "json":
		log.Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	case "", "text":
		log.Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return errors.Errorf("unknown log format %q", v)
	}
	return nil
}
