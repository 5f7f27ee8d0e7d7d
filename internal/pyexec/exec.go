package pyexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRuntime implements the Runtime interface using raw OS processes.
type ExecRuntime struct{}

// NewExecRuntime creates a new process-based runtime.
func NewExecRuntime() *ExecRuntime {
	return &ExecRuntime{}
}

// ExecHandle wraps a started exec.Cmd.
type ExecHandle struct {
	cmd *exec.Cmd
}

// Start implements Runtime.Start using os/exec.
func (e *ExecRuntime) Start(ctx context.Context, opts StartOptions) (Handle, error) {
	if len(opts.Command) == 0 {
		return nil, fmt.Errorf("command is required")
	}

	cmd := exec.Command(opts.Command[0], opts.Command[1:]...)
	cmd.Env = opts.Env
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &ExecHandle{cmd: cmd}, nil
}

// Wait blocks until the process exits and maps its state to an ExitResult.
// A non-zero exit status is an outcome, not an error; Wait returns an error
// only for context cancellation or wait-level failures.
func (h *ExecHandle) Wait(ctx context.Context) (ExitResult, error) {
	done := make(chan error, 1)
	go func() {
		done <- h.cmd.Wait()
	}()

	select {
	case err := <-done:
		return resultFromWait(h.cmd, err)
	case <-ctx.Done():
		return ExitResult{Code: -1}, ctx.Err()
	}
}

func resultFromWait(cmd *exec.Cmd, err error) (ExitResult, error) {
	if err == nil {
		return ExitResult{Code: 0}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return ExitResult{Code: -1}, err
	}

	state := exitErr.ProcessState
	code := state.ExitCode()
	if code >= 0 {
		return ExitResult{Code: code}, nil
	}

	// Signal death: ProcessState.String() renders as "signal: <name>"
	// on every platform that reports signals, which avoids asserting
	// platform-specific WaitStatus types.
	sig := strings.TrimPrefix(state.String(), "signal: ")
	return ExitResult{Code: -1, Signal: sig}, nil
}
