// Package config handles configuration loading and defaults.
package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultTodoFile       = "pydo.td"
	DefaultTickIntervalMS = 100
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
)

// Config holds the full configuration for pydo.
type Config struct {
	// Paths
	TodoFile   string `toml:"todo_file"`
	SchemaFile string `toml:"schema_file"` // Empty uses the embedded schema

	// Dashboard refresh interval in milliseconds
	TickIntervalMS int `toml:"tick_interval_ms"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogFile       string `toml:"log_file"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"todo_file",
		"schema_file",
		"tick_interval_ms",
		"log_level",
		"log_format",
		"log_file",
		"log_timestamps",
		"log_caller",
	}
}
