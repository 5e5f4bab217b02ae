package docs

import "fmt"

// Parser turns document source text into a Node tree.
//
// Design decision: We use an interface so the checker and CLI are
// indifferent to the markup language; the rst and markdown subpackages
// provide the implementations.
type Parser interface {
	// Parse builds the document tree for source read from the file at
	// path. The path is used only for error messages. A returned error
	// of type *ParseError means the document was rejected as a whole and
	// produced no tree.
	Parse(source []byte, path string) (*Node, error)
}

// ParseError reports that a document could not be parsed. It is fatal for
// that document only; other documents in the run still proceed.
type ParseError struct {
	// Path is the document's file path.
	Path string

	// Line is the 1-based line of the offending construct, or 0 when the
	// problem is not tied to a line.
	Line int

	// Message describes the markup problem.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
