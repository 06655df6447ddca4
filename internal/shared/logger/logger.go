package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is an alias used by services for dependency injection.
type Logger = log.Logger

// New returns a leveled key/value logger with a consistent service prefix.
func New(service string) *Logger {
	return NewWithWriter(os.Stdout, service)
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(w io.Writer, service string) *Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          service,
		ReportTimestamp: true,
		TimeFormat:      time.StampMicro,
	})
}

// Configure applies a level (debug|info|warn|error) and format (text|json).
func Configure(l *Logger, level, format string) error {
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		l.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(log.TextFormatter)
	case "json":
		l.SetFormatter(log.JSONFormatter)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
