package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# pydo configuration file
# Values can be overridden by PYDO_* environment variables or CLI flags

# Todo file (relative to the working directory)
todo_file = "pydo.td"

# JSON Schema used by "pydo doctor" (empty uses the built-in schema)
# schema_file = "pydo.schema.json"

# Dashboard refresh interval in milliseconds
tick_interval_ms = 100

# Logging
log_level = "warn"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
# log_file = "~/.pydo/pydo.log"
log_timestamps = false
log_caller = false
`
}
