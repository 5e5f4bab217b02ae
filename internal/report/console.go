package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Ishaan29/rstcheck/internal/model"
)

// ConsoleWriter emits the classic rstcheck terminal report: each block's
// raw snippet followed by a green "Okay" or a red diagnostic line, and a
// final "<N> failure(s)" line. Color escapes are emitted only when the
// destination is an interactive terminal.
type ConsoleWriter struct {
	out            io.Writer
	strictWarnings bool
	green          *color.Color
	red            *color.Color
}

// NewConsoleWriter creates a ConsoleWriter. Color is enabled iff out is a
// terminal; use NewConsoleWriterColor to force either way in tests.
func NewConsoleWriter(out io.Writer, strictWarnings bool) *ConsoleWriter {
	colorize := false
	if f, ok := out.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return NewConsoleWriterColor(out, strictWarnings, colorize)
}

// NewConsoleWriterColor creates a ConsoleWriter with color explicitly
// enabled or disabled.
func NewConsoleWriterColor(out io.Writer, strictWarnings, colorize bool) *ConsoleWriter {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if colorize {
		green.EnableColor()
		red.EnableColor()
	} else {
		green.DisableColor()
		red.DisableColor()
	}
	return &ConsoleWriter{
		out:            out,
		strictWarnings: strictWarnings,
		green:          green,
		red:            red,
	}
}

// WriteDocument prints each block's snippet and verdict in document order,
// plus the parse error for documents the parser rejected.
func (w *ConsoleWriter) WriteDocument(result *model.DocumentResult) error {
	if result.ParseError != "" {
		if _, err := w.red.Fprintln(w.out, result.ParseError); err != nil {
			return err
		}
	}

	for _, o := range result.Outcomes {
		if _, err := fmt.Fprintln(w.out, o.Snippet); err != nil {
			return err
		}

		var err error
		switch o.Status {
		case model.StatusPassed:
			_, err = w.green.Fprintln(w.out, "Okay")
		case model.StatusFailed:
			_, err = w.red.Fprintf(w.out, "%s:%d: %s\n", result.Path, o.Line, o.Diagnostic)
		case model.StatusUnknownLanguage:
			_, err = w.red.Fprintf(w.out, "%s:%d: Unknown language: %s\n", result.Path, o.Line, o.Language)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the final failure count: red when nonzero, green
// when the run is clean.
func (w *ConsoleWriter) WriteSummary(summary *model.RunSummary) error {
	failures := summary.TotalFailures(w.strictWarnings)
	c := w.green
	if failures > 0 {
		c = w.red
	}
	_, err := c.Fprintf(w.out, "%d failure(s)\n", failures)
	return err
}
