// Package logger builds the zerolog logger used across the service.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0664

// Build collects logger options before Make constructs the logger.
type Build struct {
	writer io.Writer
	path   string
	level  string
}

func New() *Build {
	return &Build{}
}

// FromPath appends log output to the file at path.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

// FromWriter sends log output to w instead of stdout.
func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

// WithLevel sets the minimum level from its string form (trace, debug, info,
// warn, error). An empty level means info.
func (b *Build) WithLevel(level string) *Build {
	b.level = level
	return b
}

// Make constructs the logger. File output is synchronized so concurrent
// request handlers never interleave log lines.
func (b *Build) Make() (zerolog.Logger, error) {
	writer := b.writer
	if writer == nil {
		writer = os.Stdout
	}

	if b.path != "" {
		logFile, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Logger{}, err
		}
		writer = zerolog.SyncWriter(logFile)
	}

	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(b.level)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", b.level, err)
		}
		level = parsed
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}
