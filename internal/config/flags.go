package config

import (
	"github.com/spf13/pflag"
)

// flagFields maps flag names to the config field they override.
var flagFields = map[string]string{
	"file":           "todo_file",
	"schema":         "schema_file",
	"tick":           "tick_interval_ms",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-file":       "log_file",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// BindFlags registers the configuration flags on fs. Defaults shown in help
// are the built-in defaults; Load only applies flags that were set.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", DefaultTodoFile, "Path to the todo file")
	fs.String("schema", "", "Path to a JSON Schema overriding the embedded one")
	fs.Int("tick", DefaultTickIntervalMS, "Dashboard refresh interval (milliseconds)")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-format", DefaultLogFormat, "Log format (text, json, logfmt)")
	fs.String("log-file", "", "Write logs to this file instead of stderr")
	fs.Bool("log-timestamps", false, "Show timestamps in logs")
	fs.Bool("log-caller", false, "Show caller location in logs")
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet, sources map[string]ConfigSource) error {
	if fs == nil {
		return nil
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		field, ok := flagFields[f.Name]
		if !ok {
			return
		}
		var err error
		switch f.Name {
		case "file":
			cfg.TodoFile, err = fs.GetString(f.Name)
		case "schema":
			cfg.SchemaFile, err = fs.GetString(f.Name)
		case "tick":
			cfg.TickIntervalMS, err = fs.GetInt(f.Name)
		case "log-level":
			cfg.LogLevel, err = fs.GetString(f.Name)
		case "log-format":
			cfg.LogFormat, err = fs.GetString(f.Name)
		case "log-file":
			cfg.LogFile, err = fs.GetString(f.Name)
		case "log-timestamps":
			cfg.LogTimestamps, err = fs.GetBool(f.Name)
		case "log-caller":
			cfg.LogCaller, err = fs.GetBool(f.Name)
		}
		keep(err)
		if err == nil && sources != nil {
			sources[field] = SourceFlag
		}
	})

	return firstErr
}
