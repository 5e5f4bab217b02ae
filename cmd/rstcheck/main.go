// Package main provides the entry point for the rstcheck CLI.
//
// rstcheck validates the code samples embedded in documentation: it
// extracts every code-block directive from reStructuredText (and fenced
// code blocks from Markdown), runs each snippet through a
// language-appropriate syntax checker, and fails the run when any snippet
// does not parse.
//
// Usage:
//
//	rstcheck README.rst docs/*.rst
//	rstcheck --strict-warnings docs/guide.rst
//
// See --help for all available options.
package main

// main is the entry point for rstcheck.
func main() {
	Execute()
}
