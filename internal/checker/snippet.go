package checker

import (
	"fmt"
	"os"
)

// materializeSnippet writes text verbatim to a uniquely named temporary
// file with the given extension and returns its path together with a
// cleanup function. The file is flushed and closed before returning, so a
// checker process can open it immediately.
//
// Callers must defer cleanup so the file is removed whether the check
// passes, fails, or never launches.
func materializeSnippet(text, extension string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "rstcheck-*"+extension)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	path = f.Name()
	cleanup = func() {
		_ = os.Remove(path) //nolint:errcheck // Best effort cleanup
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		cleanup()
		return "", nil, fmt.Errorf("failed to write snippet: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to flush snippet: %w", err)
	}
	return path, cleanup, nil
}
