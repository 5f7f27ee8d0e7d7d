package pyexec

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestStart_EmptyCommand(t *testing.T) {
	rt := NewExecRuntime()

	ctx := context.Background()
	_, err := rt.Start(ctx, StartOptions{
		Command: []string{},
	})

	if err == nil {
		t.Fatal("expected error for empty command")
	}
	if !strings.Contains(err.Error(), "command is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStart_CommandNotFound(t *testing.T) {
	rt := NewExecRuntime()

	ctx := context.Background()
	_, err := rt.Start(ctx, StartOptions{
		Command: []string{"nonexistent-binary-xyz"},
	})

	if err == nil {
		t.Fatal("expected error for non-existent command")
	}
}

func TestWait_ExitCodeZero(t *testing.T) {
	rt := NewExecRuntime()

	ctx := context.Background()
	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"true"}, // exits with 0
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if result.Code != 0 {
		t.Errorf("expected exit code 0, got %d", result.Code)
	}
	if result.Signaled() {
		t.Errorf("expected no signal, got %q", result.Signal)
	}
}

func TestWait_ExitCodeNonZero(t *testing.T) {
	rt := NewExecRuntime()

	ctx := context.Background()
	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"sh", "-c", "exit 7"},
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if result.Code != 7 {
		t.Errorf("expected exit code 7, got %d", result.Code)
	}
}

func TestWait_SignalDeath(t *testing.T) {
	rt := NewExecRuntime()

	ctx := context.Background()
	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"sh", "-c", "kill -TERM $$"},
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if !result.Signaled() {
		t.Fatalf("expected signal death, got exit code %d", result.Code)
	}
	if result.Code != -1 {
		t.Errorf("expected code -1 for signal death, got %d", result.Code)
	}
	if !strings.Contains(result.Signal, "terminated") {
		t.Errorf("expected signal name to mention terminated, got %q", result.Signal)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	rt := NewExecRuntime()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"sleep", "10"},
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result, err := handle.Wait(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
	if result.Code != -1 {
		t.Errorf("expected exit code -1 on timeout, got %d", result.Code)
	}
}

func TestStart_CapturesOutput(t *testing.T) {
	rt := NewExecRuntime()

	var stdout bytes.Buffer
	ctx := context.Background()
	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"echo", "hello world"},
		Stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := handle.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "hello world") {
		t.Errorf("expected output to contain 'hello world', got: %s", stdout.String())
	}
}

func TestStart_PassesEnvironment(t *testing.T) {
	rt := NewExecRuntime()

	var stdout bytes.Buffer
	ctx := context.Background()
	handle, err := rt.Start(ctx, StartOptions{
		Command: []string{"sh", "-c", "echo $NOTEBOOK_MCP_TEST_VAR"},
		Env:     []string{"NOTEBOOK_MCP_TEST_VAR=custom-value"},
		Stdout:  &stdout,
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := handle.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	if got := strings.TrimSpace(stdout.String()); got != "custom-value" {
		t.Errorf("expected 'custom-value', got: '%s'", got)
	}
}

func TestFakeRuntime_ScriptsAndRecords(t *testing.T) {
	fake := &FakeRuntime{
		Results: []FakeResult{
			{Exit: ExitResult{Code: 3}},
		},
	}

	ctx := context.Background()
	handle, err := fake.Start(ctx, StartOptions{Command: []string{"python3", "-c", "import notebook_mcp"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	result, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if result.Code != 3 {
		t.Errorf("expected scripted exit code 3, got %d", result.Code)
	}

	if len(fake.Calls) != 1 || fake.Calls[0][0] != "python3" {
		t.Errorf("expected recorded call, got %v", fake.Calls)
	}

	// Unscripted calls must fail loudly.
	if _, err := fake.Start(ctx, StartOptions{Command: []string{"python3"}}); err == nil {
		t.Error("expected error for unscripted call")
	}
}
