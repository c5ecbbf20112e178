// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.pydo/pydo.toml or OS-specific config directory)
// 3. Project config file (pydo.toml or .pydo.toml in the working directory)
// 4. Environment variables (PYDO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.pydo/pydo.toml (preferred)
// - Windows: %APPDATA%\pydo\pydo.toml
// - macOS: ~/Library/Application Support/pydo/pydo.toml
// - Linux/BSD: $XDG_CONFIG_HOME/pydo/pydo.toml or ~/.config/pydo/pydo.toml
//
// The todo file path is resolved against the working directory once, when
// the configuration is finalized, and passed explicitly from there on.
package config
