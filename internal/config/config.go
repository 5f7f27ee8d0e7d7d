// Package config captures launcher configuration from environment variables.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPipSpec is the requirement spec installed when no override is set.
const DefaultPipSpec = "notebook-mcp"

// envPrefix scopes every launcher variable, e.g. NOTEBOOK_MCP_PYTHON.
const envPrefix = "NOTEBOOK_MCP"

// Config is an immutable snapshot of the launcher's configuration, captured
// once at startup. Backend variables (MCP_TRANSPORT, MCP_HOST, MCP_PORT,
// JUPYTER_BASE_URL, JUPYTER_TOKEN) are intentionally absent: they ride along
// in Environ and are never read by the launcher itself.
type Config struct {
	// Python is the interpreter override (NOTEBOOK_MCP_PYTHON). Used
	// verbatim when non-empty; discovery is skipped entirely.
	Python string

	// PipSpec is the requirement installed when the backend package is not
	// importable (NOTEBOOK_MCP_PIP_SPEC).
	PipSpec string

	// PipArgs are extra arguments appended to the pip install command
	// (NOTEBOOK_MCP_PIP_ARGS, whitespace-separated).
	PipArgs []string

	// LogLevel controls launcher diagnostics on stderr
	// (NOTEBOOK_MCP_LOG_LEVEL: debug, info, warn, error).
	LogLevel string

	// Environ is the full process environment, passed through to the
	// backend untouched.
	Environ []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("pip_spec", DefaultPipSpec)
	v.SetDefault("log_level", "warn")

	return &Config{
		Python:   v.GetString("python"),
		PipSpec:  v.GetString("pip_spec"),
		PipArgs:  strings.Fields(v.GetString("pip_args")),
		LogLevel: v.GetString("log_level"),
		Environ:  os.Environ(),
	}
}
