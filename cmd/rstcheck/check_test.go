package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/Ishaan29/rstcheck/internal/checker"
	"github.com/Ishaan29/rstcheck/internal/config"
	"github.com/Ishaan29/rstcheck/internal/docs/markdown"
	"github.com/Ishaan29/rstcheck/internal/docs/rst"
	"github.com/Ishaan29/rstcheck/internal/model"
)

// TestParserFor tests parser selection by file extension.
func TestParserFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		markdown bool
	}{
		{name: "rst file", path: "docs/intro.rst", markdown: false},
		{name: "txt file", path: "README.txt", markdown: false},
		{name: "no extension", path: "CHANGELOG", markdown: false},
		{name: "md file", path: "README.md", markdown: true},
		{name: "uppercase md", path: "README.MD", markdown: true},
		{name: "markdown file", path: "notes.markdown", markdown: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parser := parserFor(tt.path, false)
			switch parser.(type) {
			case *markdown.Parser:
				if !tt.markdown {
					t.Errorf("parserFor(%q) selected markdown, expected rst", tt.path)
				}
			case *rst.Parser:
				if tt.markdown {
					t.Errorf("parserFor(%q) selected rst, expected markdown", tt.path)
				}
			default:
				t.Errorf("parserFor(%q) returned unexpected type %T", tt.path, parser)
			}
		})
	}
}

// TestBuildRegistry tests configuration-file language overrides.
func TestBuildRegistry(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.File.Languages = map[string]config.Language{
		"lua": {
			Extension: ".lua",
			Command:   []string{"luac", "-p"},
		},
	}

	registry := buildRegistry(cfg)

	spec, ok := registry.Lookup("lua")
	if !ok {
		t.Fatal("expected lua to be registered")
	}
	if spec.Extension != ".lua" {
		t.Errorf("Extension = %q, expected .lua", spec.Extension)
	}

	// Builtins stay available alongside overrides.
	if _, ok := registry.Lookup("python"); !ok {
		t.Error("expected builtin python to remain registered")
	}
}

// writeDocument writes a test document into dir and returns its path.
func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// testChecker creates a checker with the builtin registry and a quiet logger.
func testChecker(t *testing.T) *checker.Checker {
	t.Helper()

	return checker.New(
		checker.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))),
	)
}

// TestCheckOne tests single-document checking end to end.
func TestCheckOne(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}

	dir := t.TempDir()
	cfg := config.NewConfig()
	chk := testChecker(t)

	t.Run("valid document with mixed blocks", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, dir, "mixed.rst", `Title
=====

.. code-block:: sh

    echo ok

.. code-block:: ruby

    puts 1
`)

		result := checkOne(context.Background(), cfg, chk, path)

		if result.ParseError != "" {
			t.Fatalf("unexpected parse error: %s", result.ParseError)
		}
		if len(result.Outcomes) != 2 {
			t.Fatalf("got %d outcomes, expected 2", len(result.Outcomes))
		}
		if result.Outcomes[0].Status != model.StatusPassed {
			t.Errorf("outcome 0 = %s, expected PASSED", result.Outcomes[0].Status)
		}
		if result.Outcomes[1].Status != model.StatusUnknownLanguage {
			t.Errorf("outcome 1 = %s, expected UNKNOWN_LANGUAGE", result.Outcomes[1].Status)
		}
	})

	t.Run("failing block", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, dir, "bad.rst", `.. code-block:: sh

    echo "unterminated
`)

		result := checkOne(context.Background(), cfg, chk, path)

		if len(result.Outcomes) != 1 {
			t.Fatalf("got %d outcomes, expected 1", len(result.Outcomes))
		}
		if result.Outcomes[0].Status != model.StatusFailed {
			t.Errorf("status = %s, expected FAILED", result.Outcomes[0].Status)
		}
		if result.Outcomes[0].Diagnostic == "" {
			t.Error("expected a non-empty diagnostic")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		result := checkOne(context.Background(), cfg, chk, filepath.Join(dir, "nonexistent.rst"))

		if result.ParseError == "" {
			t.Error("expected a parse error for a missing file")
		}
		if len(result.Outcomes) != 0 {
			t.Errorf("got %d outcomes, expected none", len(result.Outcomes))
		}
	})

	t.Run("markup warning fatal under strict rst", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, dir, "warn.rst", `Title
==

Paragraph.
`)

		strictCfg := config.NewConfig()
		strictCfg.StrictRST = true

		result := checkOne(context.Background(), strictCfg, chk, path)
		if result.ParseError == "" {
			t.Error("expected a parse error under strict rst")
		}

		// The same document parses in permissive mode.
		result = checkOne(context.Background(), cfg, chk, path)
		if result.ParseError != "" {
			t.Errorf("unexpected parse error in permissive mode: %s", result.ParseError)
		}
	})

	t.Run("markdown document", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, dir, "readme.md", "# Title\n\n```sh\necho ok\n```\n")

		result := checkOne(context.Background(), cfg, chk, path)

		if result.ParseError != "" {
			t.Fatalf("unexpected parse error: %s", result.ParseError)
		}
		if len(result.Outcomes) != 1 {
			t.Fatalf("got %d outcomes, expected 1", len(result.Outcomes))
		}
		if result.Outcomes[0].Status != model.StatusPassed {
			t.Errorf("status = %s, expected PASSED", result.Outcomes[0].Status)
		}
	})
}

// TestRunCheck tests the aggregate run and its exit signaling.
func TestRunCheck(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	good := writeDocument(t, dir, "good.rst", `.. code-block:: sh

    echo ok
`)
	bad := writeDocument(t, dir, "bad.rst", `.. code-block:: sh

    echo "unterminated
`)

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Targets = []string{good}

		if err := runCheck(context.Background(), cfg, logger); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("failures found", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Targets = []string{good, bad}

		err := runCheck(context.Background(), cfg, logger)
		if !errors.Is(err, errFailuresFound) {
			t.Errorf("expected errFailuresFound, got %v", err)
		}
	})

	t.Run("parallel run keeps failures", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Targets = []string{good, bad, good}
		cfg.Jobs = 3

		err := runCheck(context.Background(), cfg, logger)
		if !errors.Is(err, errFailuresFound) {
			t.Errorf("expected errFailuresFound, got %v", err)
		}
	})

	t.Run("json report to file", func(t *testing.T) {
		t.Parallel()

		reportPath := filepath.Join(dir, "out", "report.json")
		cfg := config.NewConfig()
		cfg.Targets = []string{good}
		cfg.JSONReport = true
		cfg.ReportFile = reportPath

		if err := runCheck(context.Background(), cfg, logger); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if len(data) == 0 {
			t.Error("expected a non-empty report file")
		}
	})
}
