// Package docs defines the document tree that markup parsers produce and
// the checker traverses.
//
// The tree is deliberately markup-agnostic: the reStructuredText and
// Markdown parsers in the subpackages both emit the same Node type, so the
// checker never needs to know which markup a document was written in. The
// only construct the checker cares about is a literal block carrying the
// "code-block" class with a declared language.
//
// Design decision: Traversal control uses an explicit WalkStatus return
// value (continue or skip children) rather than a sentinel error, because
// pruning a subtree is a routine traversal decision, not a failure.
package docs
