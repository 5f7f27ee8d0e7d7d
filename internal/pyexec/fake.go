package pyexec

import (
	"context"
	"fmt"
)

// FakeResult scripts the outcome of one Start call on a FakeRuntime.
type FakeResult struct {
	// StartErr, when non-nil, makes Start fail without producing a handle.
	StartErr error

	// Exit is the outcome returned by the handle's Wait.
	Exit ExitResult
}

// FakeRuntime is a scripted Runtime for tests. Each Start consumes the next
// FakeResult and records the command it was given.
type FakeRuntime struct {
	Results []FakeResult

	// Calls records the Command of every Start invocation, in order.
	Calls [][]string
}

var _ Runtime = &FakeRuntime{}

// Start implements Runtime.Start against the scripted results.
func (f *FakeRuntime) Start(ctx context.Context, opts StartOptions) (Handle, error) {
	f.Calls = append(f.Calls, opts.Command)

	idx := len(f.Calls) - 1
	if idx >= len(f.Results) {
		return nil, fmt.Errorf("fake runtime: unscripted call %d: %v", idx, opts.Command)
	}

	res := f.Results[idx]
	if res.StartErr != nil {
		return nil, res.StartErr
	}
	return &fakeHandle{exit: res.Exit}, nil
}

type fakeHandle struct {
	exit ExitResult
}

func (h *fakeHandle) Wait(ctx context.Context) (ExitResult, error) {
	return h.exit, nil
}
