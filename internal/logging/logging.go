// Package logging builds the charmbracelet/log loggers used across the
// program, optionally writing to a size-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how much to log.
type Options struct {
	// Prefix is printed before every message.
	Prefix string
	// Level is a level name ("debug", "info", "warn", "error"). Empty means info.
	Level string
	// File, when set, receives the log through a rotating writer.
	File string
	// Fallback is used when File is empty. Nil discards output.
	Fallback io.Writer
}

// Rotation limits for File.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 7
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. The returned closer releases the log file, if any,
// and must be closed when the program exits.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}
		out, closer = lj, lj
	case opts.Fallback != nil:
		out = opts.Fallback
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Stderr is a convenience for Options{Fallback: os.Stderr}.
func Stderr(prefix, level, file string) (*log.Logger, io.Closer, error) {
	return New(Options{Prefix: prefix, Level: level, File: file, Fallback: os.Stderr})
}
