package rst

// Severity grades a markup problem, mirroring the docutils levels.
type Severity int

const (
	// SeverityInfo is a minor observation about the markup.
	SeverityInfo Severity = iota + 1

	// SeverityWarning is a recoverable markup problem, such as a title
	// underline shorter than its title.
	SeverityWarning

	// SeverityError is a markup problem that loses content, such as a
	// directive with no content block.
	SeverityError

	// SeveritySevere is an unrecoverable markup problem.
	SeveritySevere
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeveritySevere:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}

// permissiveHaltLevel is the severity at which parsing aborts by default.
// Only unrecoverable problems halt a permissive parse.
const permissiveHaltLevel = SeveritySevere

// strictHaltLevel is the severity at which parsing aborts in strict mode:
// the lowest level, so any recorded problem rejects the document.
const strictHaltLevel = SeverityInfo
