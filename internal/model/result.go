package model

import "time"

// DocumentResult holds every outcome collected from one document.
//
// Design decision: A document that fails to parse produces zero outcomes but
// still records the parse error here, so the aggregator can count it as a
// run failure without inventing a synthetic block outcome.
type DocumentResult struct {
	// Path is the document's file path as given on the command line.
	Path string `json:"path"`

	// Outcomes are the per-block results in document order
	// (top-to-bottom source order).
	Outcomes []Outcome `json:"outcomes"`

	// ParseError is the markup error message when the parser rejected the
	// whole document. Empty for documents that parsed.
	ParseError string `json:"parse_error,omitempty"`

	// CheckedAt is the timestamp when checking of this document started.
	CheckedAt time.Time `json:"checked_at"`
}

// NewDocumentResult creates an empty result for the given document path.
func NewDocumentResult(path string) *DocumentResult {
	return &DocumentResult{
		Path:      path,
		Outcomes:  make([]Outcome, 0),
		CheckedAt: time.Now(),
	}
}

// Append records one block outcome. Outcomes must be appended in document
// order; the slice order is the report order.
func (d *DocumentResult) Append(o Outcome) {
	d.Outcomes = append(d.Outcomes, o)
}

// Failures counts the outcomes that fail the run under the given
// strict-warnings policy. A document-level parse error counts as one
// additional failure.
func (d *DocumentResult) Failures(strictWarnings bool) int {
	n := 0
	if d.ParseError != "" {
		n++
	}
	for _, o := range d.Outcomes {
		if o.CountsAsFailure(strictWarnings) {
			n++
		}
	}
	return n
}

// RunSummary aggregates results across all documents in one invocation.
//
// Design decision: Failure counts are derived on demand rather than kept as
// mutable counters, so the summary can never disagree with its outcomes.
type RunSummary struct {
	// Documents holds per-document results in command-line order.
	Documents []*DocumentResult `json:"documents"`

	// StartedAt is the timestamp when the run began.
	StartedAt time.Time `json:"started_at"`
}

// NewRunSummary creates an empty summary.
func NewRunSummary() *RunSummary {
	return &RunSummary{
		Documents: make([]*DocumentResult, 0),
		StartedAt: time.Now(),
	}
}

// Add appends a document result to the summary.
func (r *RunSummary) Add(d *DocumentResult) {
	r.Documents = append(r.Documents, d)
}

// TotalBlocks returns the number of code blocks checked across all documents.
func (r *RunSummary) TotalBlocks() int {
	n := 0
	for _, d := range r.Documents {
		n += len(d.Outcomes)
	}
	return n
}

// TotalFailures counts failing outcomes and parse errors across the run.
func (r *RunSummary) TotalFailures(strictWarnings bool) int {
	n := 0
	for _, d := range r.Documents {
		n += d.Failures(strictWarnings)
	}
	return n
}

// ExitCode returns the process exit status for the run: 0 when there are no
// failures, 1 otherwise.
func (r *RunSummary) ExitCode(strictWarnings bool) int {
	if r.TotalFailures(strictWarnings) > 0 {
		return 1
	}
	return 0
}
