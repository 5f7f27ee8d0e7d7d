package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
	"github.com/akram-side-projects/notebook-mcp/internal/launcher"
	"github.com/akram-side-projects/notebook-mcp/internal/logger"
	"github.com/akram-side-projects/notebook-mcp/internal/pyexec"
)

// exitCode is set by commands and returned to the OS by Execute.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "notebook-mcp [backend args...]",
	Short: "Launcher for the notebook-mcp Python backend",
	Long: `notebook-mcp bootstraps and runs the notebook-mcp MCP server.

The launcher locates a Python interpreter, installs the notebook-mcp
package on first use, then runs "python -m notebook_mcp" with your
arguments, environment, and terminal handed over untouched. It defines
no flags of its own: everything after the program name is forwarded
verbatim to the backend.

Configuration (environment variables):
  NOTEBOOK_MCP_PYTHON      interpreter override, used as-is
  NOTEBOOK_MCP_PIP_SPEC    pip requirement to install (default: notebook-mcp)
  NOTEBOOK_MCP_PIP_ARGS    extra pip arguments, space-separated
  NOTEBOOK_MCP_LOG_LEVEL   launcher log level on stderr (default: warn)

Backend configuration such as MCP_TRANSPORT, MCP_HOST, MCP_PORT,
JUPYTER_BASE_URL and JUPYTER_TOKEN passes through to the backend and is
never read by the launcher.

Diagnose your environment without launching:
  notebook-mcp doctor`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(cfg.LogLevel)
		ctx := logger.WithLaunchID(context.Background(), logger.NewLaunchID())

		l := launcher.New(pyexec.NewExecRuntime(), cfg, log,
			cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

		code, err := l.Run(ctx, args)
		exitCode = code
		return err
	},
}

// Execute runs the launcher CLI and returns the process exit code. Fatal
// launcher errors print a diagnostic to stderr; a non-zero backend exit is
// not an error and propagates silently as the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "notebook-mcp: %v\n", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	return exitCode
}
