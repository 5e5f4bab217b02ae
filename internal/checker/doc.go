// Package checker contains the core of rstcheck: the language registry,
// the snippet materializer, the external checker runner, and the tree
// walker that dispatches code blocks to checkers.
//
// The walker visits every node of a parsed document exactly once in
// document order. Every literal block tagged "code-block" produces exactly
// one outcome (passed, failed with a diagnostic, or unknown language),
// even when the language is unrecognized, the snippet cannot be written to
// disk, or the checker binary cannot be launched. No per-block error ever
// aborts the traversal of the remaining blocks.
//
// Design decision: The language-to-command mapping is immutable static
// data rather than a runtime-constructed object. Lookups are exact string
// matches with no fallback, so the registry is trivially testable and the
// behavior for unrecognized tags is uniform.
package checker
