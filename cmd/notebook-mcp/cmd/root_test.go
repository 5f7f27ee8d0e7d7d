package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeStubInterpreter installs a fake python3 into dir that answers the
// import probe, --version, and module-mode backend runs.
func writeStubInterpreter(t *testing.T, dir string) string {
	t.Helper()
	stub := filepath.Join(dir, "python3")
	script := `#!/bin/sh
if [ "$1" = "-c" ]; then
  exit "${STUB_IMPORT_EXIT:-0}"
fi
if [ "$1" = "--version" ]; then
  echo "Python 3.12.1"
  exit 0
fi
if [ "$1" = "-m" ] && [ "$2" = "notebook_mcp" ]; then
  shift 2
  echo "backend-args: $@"
  exit "${STUB_EXIT:-0}"
fi
exit 64
`
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write stub interpreter: %v", err)
	}
	return stub
}

// resetCommand clears state shared across Execute calls.
func resetCommand() {
	exitCode = 0
	rootCmd.SetArgs(nil)
}

func TestRootCommand_ForwardsArgsAndExitCode(t *testing.T) {
	resetCommand()
	dir := t.TempDir()
	writeStubInterpreter(t, dir)
	t.Setenv("PATH", dir)
	t.Setenv("NOTEBOOK_MCP_PYTHON", "")
	t.Setenv("STUB_EXIT", "0")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"--transport", "stdio"})

	code := Execute()
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "backend-args: --transport stdio") {
		t.Errorf("expected backend to receive args verbatim, got: %s", stdout.String())
	}
}

func TestRootCommand_BackendExitCodePropagates(t *testing.T) {
	resetCommand()
	dir := t.TempDir()
	writeStubInterpreter(t, dir)
	t.Setenv("PATH", dir)
	t.Setenv("NOTEBOOK_MCP_PYTHON", "")
	t.Setenv("STUB_EXIT", "42")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{})

	if code := Execute(); code != 42 {
		t.Errorf("expected backend exit code 42 to propagate, got %d", code)
	}
}

func TestRootCommand_NoInterpreter(t *testing.T) {
	resetCommand()
	t.Setenv("PATH", t.TempDir())
	t.Setenv("NOTEBOOK_MCP_PYTHON", "")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{})

	if code := Execute(); code != 1 {
		t.Errorf("expected exit code 1 when no interpreter resolves, got %d", code)
	}
}

func TestVersionCommand(t *testing.T) {
	resetCommand()

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"version"})

	if code := Execute(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "notebook-mcp dev") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}
