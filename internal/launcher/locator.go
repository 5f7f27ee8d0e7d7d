// Package launcher bootstraps the notebook-mcp Python backend: locate an
// interpreter, ensure the backend package is importable, then run it with
// inherited stdio and reflect its exit status.
package launcher

import (
	"os/exec"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
)

const (
	// backendModule is the module run with `python -m`.
	backendModule = "notebook_mcp"

	// envPythonOverride is named in diagnostics; the value itself is read
	// through the config snapshot.
	envPythonOverride = "NOTEBOOK_MCP_PYTHON"

	minPythonVersion = "3.9"
)

// pythonCandidates is the fixed probe priority order. The first resolvable
// name wins; later candidates are never tried once one succeeds.
var pythonCandidates = []string{"python3", "python"}

// Locate resolves the Python interpreter to launch with. An explicit
// override is returned verbatim without validation; a bad override surfaces
// later as a spawn error. Absence of any interpreter is a value, not an
// error: the caller turns ok == false into a DiscoveryError.
func Locate(cfg *config.Config) (string, bool) {
	if cfg.Python != "" {
		return cfg.Python, true
	}

	for _, candidate := range pythonCandidates {
		if path, found := resolve(candidate); found {
			return path, true
		}
	}
	return "", false
}

// resolve probes a single candidate name on PATH. Every probe failure
// (not found, permission error) folds into found == false.
func resolve(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
