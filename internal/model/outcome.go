package model

// Status classifies the result of checking a single code block.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and counting. The String() method provides
// human-readable output when needed.
type Status int

const (
	// StatusPassed indicates the external checker accepted the snippet
	// (exit status zero).
	StatusPassed Status = iota

	// StatusFailed indicates the check failed: the checker exited nonzero,
	// could not be launched, or the snippet could not be written to disk.
	// The Diagnostic field of the outcome carries the details.
	StatusFailed

	// StatusUnknownLanguage indicates the block declared a language with no
	// registry entry (including the empty language of an argument-less
	// directive). It counts as a failure only in strict-warnings mode.
	StatusUnknownLanguage
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	case StatusUnknownLanguage:
		return "UNKNOWN_LANGUAGE"
	default:
		return "INVALID"
	}
}

// Outcome is the result of checking one code block. Exactly one Outcome is
// produced per code-block node, in document order, and it is never modified
// after creation.
type Outcome struct {
	// Status classifies the result.
	Status Status `json:"status"`

	// Language is the language tag declared by the directive.
	// Empty when the directive had no argument.
	Language string `json:"language"`

	// Line is the source line of the directive in the document.
	Line int `json:"line"`

	// Snippet is the raw source text of the code block.
	Snippet string `json:"snippet"`

	// Diagnostic carries the checker's combined output for failed checks.
	// Empty for passed checks and unknown languages.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// NewPassed creates an Outcome for a snippet accepted by its checker.
func NewPassed(language string, line int, snippet string) Outcome {
	return Outcome{
		Status:   StatusPassed,
		Language: language,
		Line:     line,
		Snippet:  snippet,
	}
}

// NewFailed creates an Outcome for a failed check. The diagnostic is the
// checker's combined stdout/stderr, or the launch or I/O error message when
// the check never ran.
func NewFailed(language string, line int, snippet, diagnostic string) Outcome {
	return Outcome{
		Status:     StatusFailed,
		Language:   language,
		Line:       line,
		Snippet:    snippet,
		Diagnostic: diagnostic,
	}
}

// NewUnknownLanguage creates an Outcome for a block whose language tag has
// no registry entry.
func NewUnknownLanguage(language string, line int, snippet string) Outcome {
	return Outcome{
		Status:   StatusUnknownLanguage,
		Language: language,
		Line:     line,
		Snippet:  snippet,
	}
}

// CountsAsFailure reports whether this outcome fails the run.
// Failed outcomes always do. Unknown languages fail only when
// strict-warnings mode is enabled. Passed outcomes never do.
func (o Outcome) CountsAsFailure(strictWarnings bool) bool {
	switch o.Status {
	case StatusFailed:
		return true
	case StatusUnknownLanguage:
		return strictWarnings
	default:
		return false
	}
}
