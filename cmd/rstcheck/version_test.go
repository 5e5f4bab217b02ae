package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version retrieval.
func TestGetVersion(t *testing.T) {
	t.Run("returns ldflags version when set", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("getVersion() = %q, expected v1.2.3", got)
		}
	})

	t.Run("falls back when ldflags version is empty", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected non-empty fallback version")
		}
	})
}

// TestGetCommit tests commit hash retrieval.
func TestGetCommit(t *testing.T) {
	original := commit
	defer func() { commit = original }()

	commit = "abc1234"
	if got := getCommit(); got != "abc1234" {
		t.Errorf("getCommit() = %q, expected abc1234", got)
	}

	commit = ""
	if got := getCommit(); got == "" {
		t.Error("expected non-empty fallback commit")
	}
}

// TestNewVersionCmd tests the version command output.
func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	output := buf.String()
	if !strings.Contains(output, "rstcheck version") {
		t.Errorf("expected version header in output, got %q", output)
	}
	if !strings.Contains(output, "commit:") {
		t.Errorf("expected commit line in output, got %q", output)
	}
	if !strings.Contains(output, "built:") {
		t.Errorf("expected build date line in output, got %q", output)
	}
}
