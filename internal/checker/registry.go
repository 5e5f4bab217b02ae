package checker

import "sort"

// Spec describes how to check one language: the file extension to
// materialize snippets with, the command to run, and the extra flags that
// promote warnings to errors when strict-warnings mode is enabled.
type Spec struct {
	// Language is the tag declared by the directive, e.g. "python".
	Language string

	// Extension is the temporary file suffix, including the dot.
	Extension string

	// Args is the command line to run; the snippet path is appended as
	// the final argument.
	Args []string

	// WarningsAsErrors holds flags appended to Args under strict-warnings
	// mode. Empty for languages with no native warnings-as-errors
	// concept; the mode is simply ignored for those.
	WarningsAsErrors []string
}

// Command returns the full argument vector for checking the file at path.
func (s Spec) Command(path string, strictWarnings bool) []string {
	args := make([]string, 0, len(s.Args)+len(s.WarningsAsErrors)+1)
	args = append(args, s.Args...)
	if strictWarnings {
		args = append(args, s.WarningsAsErrors...)
	}
	return append(args, path)
}

// builtinSpecs is the seed language table. It is never mutated; Registry
// copies it on construction.
var builtinSpecs = map[string]Spec{
	"bash": {
		Language:  "bash",
		Extension: ".bash",
		Args:      []string{"bash", "-n"},
	},
	"c": {
		Language:         "c",
		Extension:        ".c",
		Args:             []string{"gcc", "-fsyntax-only", "-O3", "-std=c99", "-pedantic", "-Wall", "-Wextra"},
		WarningsAsErrors: []string{"-Werror"},
	},
	"cpp": {
		Language:         "cpp",
		Extension:        ".cpp",
		Args:             []string{"g++", "-std=c++0x", "-pedantic", "-fsyntax-only", "-O3", "-Wall", "-Wextra"},
		WarningsAsErrors: []string{"-Werror"},
	},
	"python": {
		Language:  "python",
		Extension: ".py",
		Args:      []string{"python3", "-m", "compileall", "-q"},
	},
	"go": {
		Language:  "go",
		Extension: ".go",
		Args:      []string{"gofmt", "-e"},
	},
	"json": {
		Language:  "json",
		Extension: ".json",
		Args:      []string{"python3", "-m", "json.tool"},
	},
	"sh": {
		Language:  "sh",
		Extension: ".sh",
		Args:      []string{"sh", "-n"},
	},
}

// Registry maps language tags to checker specs. Lookup is by exact tag
// match only; there is no fuzzy or fallback matching. A Registry is
// read-only after construction.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry creates a registry seeded with the built-in language table.
func NewRegistry() *Registry {
	specs := make(map[string]Spec, len(builtinSpecs))
	for tag, spec := range builtinSpecs {
		specs[tag] = spec
	}
	return &Registry{specs: specs}
}

// Register adds or replaces a spec. Intended for configuration-file
// overrides before the registry is handed to a Checker.
func (r *Registry) Register(spec Spec) {
	r.specs[spec.Language] = spec
}

// Lookup returns the spec for the given language tag. The empty tag and
// unrecognized tags return ok=false.
func (r *Registry) Lookup(language string) (Spec, bool) {
	spec, ok := r.specs[language]
	if !ok {
		return Spec{}, false
	}
	// Hand out copies so callers can never alter registry state.
	spec.Args = append([]string(nil), spec.Args...)
	spec.WarningsAsErrors = append([]string(nil), spec.WarningsAsErrors...)
	return spec, true
}

// Languages returns the registered language tags in sorted order.
func (r *Registry) Languages() []string {
	tags := make([]string, 0, len(r.specs))
	for tag := range r.specs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
