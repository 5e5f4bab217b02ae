package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestLogger returns a logger writing through a TempPathHandler into buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewTempPathHandler(inner))
}

// TestTempPathRewritten tests that snippet paths are replaced with the
// placeholder.
func TestTempPathRewritten(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	tempPath := filepath.Join(os.TempDir(), "rstcheck-123456.c")
	logger.Debug("running checker", "file", tempPath)

	out := buf.String()
	if strings.Contains(out, tempPath) {
		t.Errorf("temporary path leaked into log output: %s", out)
	}
	if !strings.Contains(out, Placeholder) {
		t.Errorf("placeholder missing from log output: %s", out)
	}
}

// TestTempPathInsideMessageValue tests rewriting when the path is embedded
// in a longer diagnostic string.
func TestTempPathInsideMessageValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	diag := filepath.Join(os.TempDir(), "rstcheck-777.cpp") + ":1:1: error: expected ';'"
	logger.Debug("check failed", "diagnostic", diag)

	out := buf.String()
	if strings.Contains(out, "rstcheck-777.cpp") {
		t.Errorf("temporary path leaked into log output: %s", out)
	}
	if !strings.Contains(out, "expected") {
		t.Errorf("diagnostic tail lost: %s", out)
	}
}

// TestUnrelatedAttrsUntouched tests that ordinary values pass through.
func TestUnrelatedAttrsUntouched(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Debug("checking", "path", "docs/guide.rst", "language", "python")

	out := buf.String()
	if !strings.Contains(out, "docs/guide.rst") || !strings.Contains(out, "python") {
		t.Errorf("ordinary attributes altered: %s", out)
	}
}
