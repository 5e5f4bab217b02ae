// Package markdown parses CommonMark documents into the docs tree.
//
// Fenced code blocks become literal-block nodes tagged "code-block" with
// the language taken from the fence info string, mirroring what the
// code-block directive produces for reStructuredText. A fence without an
// info string carries an empty language tag, which is always reported as
// an unknown language. Indented code blocks map to plain literal blocks
// and are not checked, matching the "::" literal block in reStructuredText.
//
// CommonMark parsing is total, so this parser never rejects a document and
// strict markup mode has no effect here.
package markdown
