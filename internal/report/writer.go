package report

import "github.com/Ishaan29/rstcheck/internal/model"

// Writer defines the interface for report output.
// Implementations write check results in various formats.
//
// Design decision: We use an interface so the CLI can stream per-document
// console output and still produce a machine-readable artifact at the end
// with the same plumbing. Writers that only care about the aggregate (JSON,
// Markdown) implement WriteDocument as a no-op.
type Writer interface {
	// WriteDocument outputs the results for one checked document.
	// Called once per document, in input order.
	WriteDocument(result *model.DocumentResult) error

	// WriteSummary outputs the end-of-run aggregate.
	WriteSummary(summary *model.RunSummary) error
}
