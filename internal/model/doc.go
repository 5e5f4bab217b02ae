// Package model defines the core data structures used throughout rstcheck.
//
// This package contains the following main types:
//   - Outcome: The result of checking a single code block
//   - DocumentResult: All outcomes collected from one document
//   - RunSummary: Aggregated results across every document in a run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (checker, report, history) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
