package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ishaan29/rstcheck/internal/model"
)

// MarkdownWriter outputs a run summary in Markdown format, designed for CI
// artifacts and sharing. Per-document streaming output is a no-op;
// everything is emitted by WriteSummary.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables and headings instead of
// hand-concatenated strings.
type MarkdownWriter struct {
	out            io.Writer
	strictWarnings bool
	titleCaser     cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(out io.Writer, strictWarnings bool) *MarkdownWriter {
	return &MarkdownWriter{
		out:            out,
		strictWarnings: strictWarnings,
		titleCaser:     cases.Title(language.English),
	}
}

// WriteDocument implements Writer. Markdown output is aggregate-only.
func (w *MarkdownWriter) WriteDocument(_ *model.DocumentResult) error {
	return nil
}

// WriteSummary writes the whole run as a Markdown report.
func (w *MarkdownWriter) WriteSummary(summary *model.RunSummary) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("rstcheck Report")
	md.PlainText("")

	failures := summary.TotalFailures(w.strictWarnings)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Documents", strconv.Itoa(len(summary.Documents))},
			{"Code Blocks", strconv.Itoa(summary.TotalBlocks())},
			{"Failures", strconv.Itoa(failures)},
			{"Strict Warnings", strconv.FormatBool(w.strictWarnings)},
		},
	})
	md.PlainText("")

	for _, doc := range summary.Documents {
		w.writeDocumentSection(md, doc)
	}

	return md.Build()
}

// writeDocumentSection writes one document's outcomes as a table.
func (w *MarkdownWriter) writeDocumentSection(md *markdown.Markdown, doc *model.DocumentResult) {
	md.H2(doc.Path)
	md.PlainText("")

	if doc.ParseError != "" {
		md.PlainText("Parse error: " + doc.ParseError)
		md.PlainText("")
		return
	}

	if len(doc.Outcomes) == 0 {
		md.PlainText("No code blocks.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(doc.Outcomes))
	for _, o := range doc.Outcomes {
		rows = append(rows, []string{
			strconv.Itoa(o.Line),
			w.languageName(o.Language),
			w.statusText(o),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Line", "Language", "Result"},
		Rows:   rows,
	})
	md.PlainText("")
}

// languageName returns a display name for a language tag.
func (w *MarkdownWriter) languageName(tag string) string {
	if tag == "" {
		return "(none)"
	}
	return w.titleCaser.String(tag)
}

// statusText renders an outcome's verdict for the table.
func (w *MarkdownWriter) statusText(o model.Outcome) string {
	switch o.Status {
	case model.StatusPassed:
		return "✅ Okay"
	case model.StatusFailed:
		return "❌ Failed"
	case model.StatusUnknownLanguage:
		if w.strictWarnings {
			return "❌ Unknown language"
		}
		return "⚠️ Unknown language"
	default:
		return o.Status.String()
	}
}
