package cmd

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
	"github.com/akram-side-projects/notebook-mcp/internal/launcher"
	"github.com/akram-side-projects/notebook-mcp/internal/logger"
	"github.com/akram-side-projects/notebook-mcp/internal/pyexec"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the Python environment without changing it",
	Long: `doctor reports how a launch would go: which interpreter resolves,
its version, and whether the notebook-mcp package is importable. It never
installs anything. Exits 0 when the environment is ready to launch.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		rt := pyexec.NewExecRuntime()
		ctx := context.Background()

		if cfg.Python != "" {
			cmd.Println(dimStyle.Render("interpreter override: " + cfg.Python))
		}

		python, ok := launcher.Locate(cfg)
		if !ok {
			cmd.Println(failStyle.Render("✗") + " no Python interpreter found on PATH")
			cmd.Println(dimStyle.Render("  set NOTEBOOK_MCP_PYTHON or install Python 3.9+"))
			exitCode = 1
			return
		}
		cmd.Println(okStyle.Render("✓") + " interpreter: " + python)

		if version := interpreterVersion(ctx, rt, python); version != "" {
			cmd.Println(okStyle.Render("✓") + " version: " + version)
		} else {
			cmd.Println(failStyle.Render("✗") + " interpreter did not report a version")
			exitCode = 1
		}

		ensurer := launcher.NewEnsurer(rt, cfg, logger.New(cfg.LogLevel), nil, nil, nil)
		if ensurer.Importable(ctx, python) {
			cmd.Println(okStyle.Render("✓") + " notebook_mcp is importable")
		} else {
			cmd.Println(failStyle.Render("✗") + " notebook_mcp is not importable" +
				dimStyle.Render(" (a launch would install "+cfg.PipSpec+")"))
			exitCode = 1
		}
	},
}

// interpreterVersion runs `python --version` and returns its trimmed
// output, or empty on any failure.
func interpreterVersion(ctx context.Context, rt pyexec.Runtime, python string) string {
	var out bytes.Buffer
	handle, err := rt.Start(ctx, pyexec.StartOptions{
		Command: []string{python, "--version"},
		Stdout:  &out,
		Stderr:  &out,
	})
	if err != nil {
		return ""
	}
	result, err := handle.Wait(ctx)
	if err != nil || result.Code != 0 {
		return ""
	}
	return strings.TrimSpace(out.String())
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
