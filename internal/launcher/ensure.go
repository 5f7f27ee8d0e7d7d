package launcher

import (
	"context"
	"io"
	"log/slog"

	"github.com/akram-side-projects/notebook-mcp/internal/config"
	"github.com/akram-side-projects/notebook-mcp/internal/logger"
	"github.com/akram-side-projects/notebook-mcp/internal/pyexec"
)

// Ensurer guarantees the backend package is importable in a given
// interpreter, installing it on demand.
type Ensurer struct {
	rt  pyexec.Runtime
	cfg *config.Config
	log *slog.Logger

	// The install step inherits these streams so pip progress is visible
	// live; probes always discard their output.
	installStdin  io.Reader
	installStdout io.Writer
	installStderr io.Writer
}

// NewEnsurer creates an Ensurer that wires the given streams into the
// install step.
func NewEnsurer(rt pyexec.Runtime, cfg *config.Config, log *slog.Logger, stdin io.Reader, stdout, stderr io.Writer) *Ensurer {
	return &Ensurer{
		rt:            rt,
		cfg:           cfg,
		log:           log,
		installStdin:  stdin,
		installStdout: stdout,
		installStderr: stderr,
	}
}

// Ensure checks that the backend package imports cleanly in python,
// installing it when it does not. The happy path performs exactly one
// probe and no install.
func (e *Ensurer) Ensure(ctx context.Context, python string) error {
	log := logger.FromContext(ctx, e.log)

	if e.probe(ctx, python) {
		log.Debug("backend package already importable", "python", python)
		return nil
	}

	log.Info("backend package not importable, installing", "python", python, "spec", e.cfg.PipSpec)
	if err := e.install(ctx, python); err != nil {
		return err
	}

	if !e.probe(ctx, python) {
		return &VerifyError{Python: python}
	}
	return nil
}

// Importable reports whether the backend package imports cleanly in the
// given interpreter. Read-only; used by the doctor command.
func (e *Ensurer) Importable(ctx context.Context, python string) bool {
	return e.probe(ctx, python)
}

// probe runs a minimal import check, discarding all output. Importable iff
// the check exits 0.
func (e *Ensurer) probe(ctx context.Context, python string) bool {
	cmd := []string{python, "-c", "import " + backendModule}

	handle, err := e.rt.Start(ctx, pyexec.StartOptions{
		Command: cmd,
		Env:     e.cfg.Environ,
	})
	if err != nil {
		return false
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		return false
	}
	return result.Code == 0
}

// install invokes pip as a module of the interpreter, never as its own
// executable, so it works when pip's script directory is not on PATH.
func (e *Ensurer) install(ctx context.Context, python string) error {
	cmd := []string{python, "-m", "pip", "install", "--upgrade", e.cfg.PipSpec}
	cmd = append(cmd, e.cfg.PipArgs...)

	handle, err := e.rt.Start(ctx, pyexec.StartOptions{
		Command: cmd,
		Env:     e.cfg.Environ,
		Stdin:   e.installStdin,
		Stdout:  e.installStdout,
		Stderr:  e.installStderr,
	})
	if err != nil {
		return &SpawnError{Cmd: cmd, Err: err}
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		return &SpawnError{Cmd: cmd, Err: err}
	}
	if result.Signaled() {
		return &SignalError{Signal: result.Signal}
	}
	if result.Code != 0 {
		return &InstallError{Cmd: cmd, Code: result.Code}
	}
	return nil
}
