package launcher

import (
	"context"
	"io"
	"log/slog"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
	"github.com/akram-side-projects/notebook-mcp/internal/logger"
	"github.com/akram-side-projects/notebook-mcp/internal/pyexec"
)

// Supervisor runs the backend and faithfully reflects its outcome. It makes
// exactly one spawn attempt and never restarts a crashed backend.
type Supervisor struct {
	rt  pyexec.Runtime
	cfg *config.Config
	log *slog.Logger

	// The backend inherits these streams directly; the launcher interposes
	// nothing, keeping the stdio MCP transport untouched.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewSupervisor creates a Supervisor wiring the given streams into the
// backend process.
func NewSupervisor(rt pyexec.Runtime, cfg *config.Config, log *slog.Logger, stdin io.Reader, stdout, stderr io.Writer) *Supervisor {
	return &Supervisor{
		rt:     rt,
		cfg:    cfg,
		log:    log,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run launches `python -m notebook_mcp <args...>` and blocks until the
// backend terminates. Arguments pass through unmodified and unparsed.
// The returned exit code is the backend's own code on a normal exit;
// signal death returns a SignalError and code 1.
func (s *Supervisor) Run(ctx context.Context, python string, args []string) (int, error) {
	cmd := []string{python, "-m", backendModule}
	cmd = append(cmd, args...)

	log := logger.FromContext(ctx, s.log)
	log.Debug("starting backend", "command", cmd)

	handle, err := s.rt.Start(ctx, pyexec.StartOptions{
		Command: cmd,
		Env:     s.cfg.Environ,
		Stdin:   s.stdin,
		Stdout:  s.stdout,
		Stderr:  s.stderr,
	})
	if err != nil {
		return 1, &SpawnError{Cmd: cmd, Err: err}
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		return 1, err
	}
	if result.Signaled() {
		// Deliberately a generic failure code, not 128+signal; the
		// diagnostic names the signal instead.
		return 1, &SignalError{Signal: result.Signal}
	}

	log.Debug("backend exited", "code", result.Code)
	return result.Code, nil
}
