package main

import (
	"testing"
	"time"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "rstcheck [flags] FILE..." {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has strictness flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"strict-rst", "strict-warnings", "jobs", "check-timeout", "json", "markdown", "output", "save", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		var hasHistory, hasVersion bool
		for _, sub := range cmd.Commands() {
			switch sub.Name() {
			case "history":
				hasHistory = true
			case "version":
				hasVersion = true
			}
		}
		if !hasHistory || !hasVersion {
			t.Error("expected history and version subcommands")
		}
	})
}

// TestBuildConfig tests flag-to-config wiring.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{
		"--strict-warnings",
		"--strict-rst",
		"-j", "4",
		"--check-timeout", "30s",
	}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	cfg, err := buildConfig(cmd, []string{"a.rst", "b.rst"})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}

	if !cfg.StrictWarnings || !cfg.StrictRST {
		t.Error("strictness flags not propagated")
	}
	if cfg.Jobs != 4 {
		t.Errorf("Jobs = %d, expected 4", cfg.Jobs)
	}
	if cfg.CheckTimeout != 30*time.Second {
		t.Errorf("CheckTimeout = %s, expected 30s", cfg.CheckTimeout)
	}
	if len(cfg.Targets) != 2 {
		t.Errorf("Targets = %v", cfg.Targets)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

// TestBuildConfigMissingExplicitConfig tests that a nonexistent explicit
// config file path is an error.
func TestBuildConfigMissingExplicitConfig(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"-c", "/nonexistent/rstcheck.yaml"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if _, err := buildConfig(cmd, []string{"a.rst"}); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
