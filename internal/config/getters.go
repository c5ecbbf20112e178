package config

import (
	"strconv"
	"time"
)

// TickInterval returns the dashboard refresh interval.
// Non-positive values fall back to the default.
func (c *Config) TickInterval() time.Duration {
	if c.TickIntervalMS <= 0 {
		return DefaultTickIntervalMS * time.Millisecond
	}
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Fields returns the configurable field names in file order.
func Fields() []string {
	return configFields()
}

// Value returns the value of a field named as in the config file, formatted
// for display. Unknown names return "".
func (c *Config) Value(field string) string {
	switch field {
	case "todo_file":
		return c.TodoFile
	case "schema_file":
		return c.SchemaFile
	case "tick_interval_ms":
		return strconv.Itoa(c.TickIntervalMS)
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_file":
		return c.LogFile
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps)
	case "log_caller":
		return strconv.FormatBool(c.LogCaller)
	default:
		return ""
	}
}
