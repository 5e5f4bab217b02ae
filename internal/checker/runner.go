package checker

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// runChecker launches the external checker synchronously, waits for it to
// exit, and returns its exit code together with the combined stdout and
// stderr. A nonzero timeout bounds the wait; zero preserves the original
// unbounded behavior.
//
// A non-nil error means the check never produced a verdict: the binary
// could not be launched or the timeout expired. Checker exits with nonzero
// status are not errors here; they are verdicts.
func runChecker(ctx context.Context, args []string, timeout time.Duration) (int, string, error) {
	if len(args) == 0 {
		return 0, "", errors.New("empty checker command")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				// Killed by timeout or cancellation, not a verdict.
				return 0, output, ctxErr
			}
			return exitErr.ExitCode(), output, nil
		}
		// Launch failure: binary not found, permission denied, etc.
		return 0, output, err
	}
	return 0, output, nil
}
