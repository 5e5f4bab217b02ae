// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - ConsoleWriter: Per-block terminal output with the final failure count
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown summary for documentation and CI artifacts
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably.
package report
