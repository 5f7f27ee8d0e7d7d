package launcher

import (
	"fmt"
	"strings"
)

// DiscoveryError reports that no Python interpreter could be found on PATH.
type DiscoveryError struct {
	Candidates []string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf(
		"no Python interpreter found (tried %s); install Python %s or newer, "+
			"or point %s at your interpreter",
		strings.Join(e.Candidates, ", "), minPythonVersion, envPythonOverride)
}

// InstallError reports a non-zero exit from the pip install command.
type InstallError struct {
	Cmd  []string
	Code int
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install command %q exited with code %d",
		strings.Join(e.Cmd, " "), e.Code)
}

// VerifyError reports that the backend package is still unimportable after
// a nominally successful install.
type VerifyError struct {
	Python string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf(
		"installed %s but %q still cannot import it; verify which interpreter "+
			"is active and set %s if multiple Pythons are installed",
		backendModule, e.Python, envPythonOverride)
}

// SpawnError reports that a child process could not be started at all.
type SpawnError struct {
	Cmd []string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", strings.Join(e.Cmd, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// SignalError reports that the backend was terminated by a signal instead
// of exiting.
type SignalError struct {
	Signal string
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("backend terminated by signal: %s", e.Signal)
}
