package checker

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Ishaan29/rstcheck/internal/docs"
	"github.com/Ishaan29/rstcheck/internal/model"
)

// Checker walks parsed documents and dispatches each code block to its
// language's external checker.
type Checker struct {
	// registry maps language tags to checker specs. Read-only.
	registry *Registry

	// strictWarnings appends warnings-as-errors flags to checker
	// commands for languages that support them.
	strictWarnings bool

	// timeout bounds each checker process. Zero means no timeout,
	// matching the original contract.
	timeout time.Duration

	// logger is used for structured logging during checking.
	logger *slog.Logger
}

// Option is a function that configures a Checker.
// This follows the functional options pattern for clean API design.
type Option func(*Checker)

// WithRegistry sets the language registry. Defaults to the built-in table.
func WithRegistry(r *Registry) Option {
	return func(c *Checker) {
		c.registry = r
	}
}

// WithStrictWarnings enables warnings-as-errors flags for checkers that
// have them.
func WithStrictWarnings(strict bool) Option {
	return func(c *Checker) {
		c.strictWarnings = strict
	}
}

// WithTimeout bounds each checker invocation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.timeout = d
	}
}

// WithLogger sets a custom logger for the checker.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// CheckDocument walks the parsed document tree and records one outcome per
// code-block literal, in document order. Nodes without the code-block
// classification are skipped without side effects. Per-block failures
// never abort the traversal.
func (c *Checker) CheckDocument(ctx context.Context, root *docs.Node, path string) *model.DocumentResult {
	result := model.NewDocumentResult(path)

	docs.Walk(root, func(n *docs.Node) docs.WalkStatus {
		if !n.IsCodeBlock() {
			return docs.WalkContinue
		}

		result.Append(c.checkBlock(ctx, n, path))

		// The block's raw text has been fully consumed; nothing below
		// it is of interest.
		return docs.WalkSkipChildren
	})

	return result
}

// checkBlock produces exactly one outcome for a code-block node.
func (c *Checker) checkBlock(ctx context.Context, n *docs.Node, path string) model.Outcome {
	spec, ok := c.registry.Lookup(n.Language)
	if !ok {
		c.logger.Debug("unknown language", "path", path, "line", n.Line, "language", n.Language)
		return model.NewUnknownLanguage(n.Language, n.Line, n.RawText)
	}

	snippetPath, cleanup, err := materializeSnippet(n.RawText, spec.Extension)
	if err != nil {
		// Unwritable filesystem fails this block only, not the run.
		return model.NewFailed(n.Language, n.Line, n.RawText, err.Error())
	}
	defer cleanup()

	args := spec.Command(snippetPath, c.strictWarnings)
	c.logger.Debug("running checker",
		"path", path,
		"line", n.Line,
		"language", n.Language,
		"command", args[0],
	)

	exitCode, output, err := runChecker(ctx, args, c.timeout)
	if err != nil {
		// Launch failure or timeout: a failed outcome, never a run abort.
		return model.NewFailed(n.Language, n.Line, n.RawText, err.Error())
	}
	if exitCode != 0 {
		diagnostic := strings.ReplaceAll(output, snippetPath, path)
		return model.NewFailed(n.Language, n.Line, n.RawText, diagnostic)
	}
	return model.NewPassed(n.Language, n.Line, n.RawText)
}
