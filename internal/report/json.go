package report

import (
	"encoding/json"
	"io"

	"github.com/Ishaan29/rstcheck/internal/model"
)

// JSONWriter outputs the whole run as one JSON document for tool
// integration. Per-document streaming output is a no-op; everything is
// emitted by WriteSummary.
type JSONWriter struct {
	out            io.Writer
	strictWarnings bool
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(out io.Writer, strictWarnings bool) *JSONWriter {
	return &JSONWriter{out: out, strictWarnings: strictWarnings}
}

// jsonReport wraps the run summary with its derived counts so consumers do
// not have to reimplement the failure policy.
type jsonReport struct {
	*model.RunSummary
	StrictWarnings bool `json:"strict_warnings"`
	TotalBlocks    int  `json:"total_blocks"`
	TotalFailures  int  `json:"total_failures"`
	ExitCode       int  `json:"exit_code"`
}

// WriteDocument implements Writer. JSON output is aggregate-only.
func (w *JSONWriter) WriteDocument(_ *model.DocumentResult) error {
	return nil
}

// WriteSummary encodes the run summary with derived counts.
func (w *JSONWriter) WriteSummary(summary *model.RunSummary) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{
		RunSummary:     summary,
		StrictWarnings: w.strictWarnings,
		TotalBlocks:    summary.TotalBlocks(),
		TotalFailures:  summary.TotalFailures(w.strictWarnings),
		ExitCode:       summary.ExitCode(w.strictWarnings),
	})
}
