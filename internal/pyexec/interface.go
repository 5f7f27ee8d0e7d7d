// Package pyexec provides the Runtime interface for spawning interpreter
// processes and waiting for their outcome.
package pyexec

import (
	"context"
	"io"
)

// Runtime defines the interface for running child processes.
// Implementations include raw OS processes and a scripted fake for tests.
type Runtime interface {
	// Start begins execution of a command and returns a handle.
	// Exactly one spawn attempt is made; a failed spawn returns an error
	// and no handle.
	Start(ctx context.Context, opts StartOptions) (Handle, error)
}

// StartOptions contains the parameters for starting a child process.
type StartOptions struct {
	// Command is the executable followed by its arguments.
	Command []string

	// Env is the full child environment. Nil inherits the parent
	// environment unchanged.
	Env []string

	// Stdin, Stdout and Stderr wire the child's standard streams.
	// Pass os.Stdin/os.Stdout/os.Stderr for direct inheritance; nil
	// streams are discarded.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExitResult describes how a child process terminated.
type ExitResult struct {
	// Code is the exit status for normal exits, or -1 when the process
	// was terminated by a signal.
	Code int

	// Signal names the terminating signal (e.g. "terminated") when
	// Code is -1, and is empty otherwise.
	Signal string
}

// Signaled reports whether the process died from a signal rather than
// exiting on its own.
func (r ExitResult) Signaled() bool {
	return r.Signal != ""
}

// Handle represents a running child process. The owner must call Wait
// exactly once; status retrieval is guaranteed on every exit path.
type Handle interface {
	// Wait blocks until the process completes and returns its outcome.
	Wait(ctx context.Context) (ExitResult, error)
}
