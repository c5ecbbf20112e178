// Package logging builds the leveled loggers used by the CLI and dashboard.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/pydo/internal/config"
)

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
	// File, when set, receives the log output (appended).
	File string
	// Output is used when File is empty. Nil discards output.
	Output io.Writer
}

// DefaultOptions returns default options writing to stderr.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "pydo",
		Output:    os.Stderr,
	}
}

// OptionsFromConfig maps the logging section of cfg onto Options.
// Output is the writer used when no log file is configured.
func OptionsFromConfig(cfg *config.Config, output io.Writer) Options {
	opts := DefaultOptions()
	opts.Level = ParseLogLevel(cfg.LogLevel)
	opts.Formatter = ParseLogFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	opts.File = cfg.LogFile
	opts.Output = output
	return opts
}

// Logger is a charmbracelet logger together with the file it owns, if any.
type Logger struct {
	*log.Logger
	Path string
	file *os.File
}

// New creates a logger. When opts.File is set the file and its directory are
// created as needed and the caller must Close the logger.
func New(opts Options) (*Logger, error) {
	out := opts.Output
	l := &Logger{}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		l.Path = opts.File
		out = file
	}
	if out == nil {
		out = io.Discard
	}

	l.Logger = log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New(Options{Output: io.Discard})
	return l
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLogLevel parses a string log level to a charmbracelet/log Level.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// ParseLogFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseLogFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
