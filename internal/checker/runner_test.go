package checker

import (
	"context"
	"strings"
	"testing"
	"time"
)

// TestRunCheckerExitCodes tests verdict reporting for passing and failing
// commands.
func TestRunCheckerExitCodes(t *testing.T) {
	t.Parallel()

	t.Run("zero exit", func(t *testing.T) {
		t.Parallel()

		code, _, err := runChecker(context.Background(), []string{"sh", "-c", "exit 0"}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != 0 {
			t.Errorf("exit code = %d, expected 0", code)
		}
	})

	t.Run("nonzero exit is a verdict, not an error", func(t *testing.T) {
		t.Parallel()

		code, _, err := runChecker(context.Background(), []string{"sh", "-c", "exit 3"}, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != 3 {
			t.Errorf("exit code = %d, expected 3", code)
		}
	})
}

// TestRunCheckerCombinedOutput tests that stdout and stderr are both
// captured.
func TestRunCheckerCombinedOutput(t *testing.T) {
	t.Parallel()

	_, output, err := runChecker(context.Background(),
		[]string{"sh", "-c", "echo out; echo err 1>&2"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "out") || !strings.Contains(output, "err") {
		t.Errorf("combined output missing a stream: %q", output)
	}
}

// TestRunCheckerLaunchFailure tests that a missing binary is reported as
// an error rather than a verdict.
func TestRunCheckerLaunchFailure(t *testing.T) {
	t.Parallel()

	_, _, err := runChecker(context.Background(),
		[]string{"rstcheck-no-such-binary-xyzzy"}, 0)
	if err == nil {
		t.Fatal("expected a launch error")
	}
}

// TestRunCheckerEmptyCommand tests the empty-command guard.
func TestRunCheckerEmptyCommand(t *testing.T) {
	t.Parallel()

	if _, _, err := runChecker(context.Background(), nil, 0); err == nil {
		t.Fatal("expected an error for an empty command")
	}
}

// TestRunCheckerTimeout tests the optional bounded wait.
func TestRunCheckerTimeout(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, _, err := runChecker(context.Background(),
		[]string{"sleep", "10"}, 100*time.Millisecond)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timeout did not bound the wait: %s", elapsed)
	}
}
