// Package rst parses the subset of reStructuredText that rstcheck needs.
//
// The parser recognizes the constructs relevant to code checking:
// code-block and sourcecode directives (which become literal-block nodes
// tagged "code-block" with a declared language), section titles,
// paragraphs, comments, and "::" literal blocks. Everything else is
// treated as plain body text.
//
// Markup problems are recorded as system messages with docutils-style
// severity levels. In permissive mode (the default) they are attached to
// the tree as system-message nodes and parsing continues. In strict mode
// the halt level drops to the lowest severity, so the first problem of any
// severity rejects the whole document with *docs.ParseError.
//
// Design decision: This parser is hand-written over lines rather than
// built on a markup library because no reStructuredText parser exists for
// Go; goldmark (used by the sibling markdown package) only speaks
// CommonMark. The subset is deliberately small: fidelity is only required
// for the code-block directive contract.
package rst
