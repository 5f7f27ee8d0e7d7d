package launcher

import (
	"context"
	"io"
	"log/slog"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
	"github.com/akram-side-projects/notebook-mcp/internal/pyexec"
)

// Launcher is the sequential bootstrap pipeline: locate an interpreter,
// ensure the backend package, supervise the backend process.
type Launcher struct {
	rt  pyexec.Runtime
	cfg *config.Config
	log *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Launcher. The streams are handed to the backend (and to
// pip during installs) for direct inheritance.
func New(rt pyexec.Runtime, cfg *config.Config, log *slog.Logger, stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{
		rt:     rt,
		cfg:    cfg,
		log:    log,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the full pipeline and returns the process exit code for the
// launcher. A non-zero backend exit is not an error: the code propagates
// as-is with err == nil. Launcher-level failures return code 1 and the
// fatal error.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	python, ok := Locate(l.cfg)
	if !ok {
		return 1, &DiscoveryError{Candidates: pythonCandidates}
	}

	ensurer := NewEnsurer(l.rt, l.cfg, l.log, l.stdin, l.stdout, l.stderr)
	if err := ensurer.Ensure(ctx, python); err != nil {
		return 1, err
	}

	supervisor := NewSupervisor(l.rt, l.cfg, l.log, l.stdin, l.stdout, l.stderr)
	return supervisor.Run(ctx, python, args)
}
