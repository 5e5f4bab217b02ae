package rst

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ishaan29/rstcheck/internal/docs"
)

// Parser parses reStructuredText source into a docs tree.
type Parser struct {
	strict bool
}

// NewParser creates a Parser. In strict mode the halt level drops to the
// lowest severity, so any markup problem rejects the whole document.
func NewParser(strict bool) *Parser {
	return &Parser{strict: strict}
}

var (
	// directiveRe matches an explicit-markup directive line such as
	// ".. code-block:: python".
	directiveRe = regexp.MustCompile(`^\.\. +([A-Za-z][A-Za-z0-9_-]*)::(?: +(.*))?$`)

	// optionRe matches a directive option field line such as ":linenos:".
	optionRe = regexp.MustCompile(`^[ \t]*:[A-Za-z0-9_-]+:([ \t].*)?$`)
)

// codeBlockDirectives are the directive spellings that produce a checkable
// literal block. Both produce identical nodes.
var codeBlockDirectives = map[string]bool{
	"code-block": true,
	"sourcecode": true,
}

// Parse implements docs.Parser.
func (p *Parser) Parse(source []byte, path string) (*docs.Node, error) {
	st := &parseState{
		lines: splitLines(source),
		path:  path,
		halt:  permissiveHaltLevel,
	}
	if p.strict {
		st.halt = strictHaltLevel
	}

	st.root = docs.NewNode(docs.KindDocument)
	st.root.Line = 1
	st.parent = st.root

	if err := st.run(); err != nil {
		return nil, err
	}
	return st.root, nil
}

// parseState carries the scanner position and the tree under construction.
type parseState struct {
	lines  []string
	pos    int
	path   string
	root   *docs.Node
	parent *docs.Node
	halt   Severity
}

// run consumes blocks until the input is exhausted.
func (st *parseState) run() error {
	for st.pos < len(st.lines) {
		line := st.lines[st.pos]

		switch {
		case isBlank(line):
			st.pos++
		case isExplicitMarkup(line):
			if err := st.explicitMarkup(); err != nil {
				return err
			}
		case indentOf(line) > 0:
			msgLine := st.pos + 1
			st.consumeIndented()
			if err := st.systemMessage(SeverityError, "Unexpected indentation.", msgLine); err != nil {
				return err
			}
		case st.isTransition():
			st.pos++
		case st.isSectionTitle():
			if err := st.section(); err != nil {
				return err
			}
		default:
			if err := st.paragraph(); err != nil {
				return err
			}
		}
	}
	return nil
}

// explicitMarkup handles a ".." block: a code-block directive, some other
// directive, or a comment. Non-code directives are consumed as opaque
// comments; their bodies are not searched for nested blocks.
func (st *parseState) explicitMarkup() error {
	start := st.pos
	line := st.lines[st.pos]

	if m := directiveRe.FindStringSubmatch(line); m != nil {
		name := m[1]
		args := strings.TrimSpace(m[2])
		if codeBlockDirectives[name] {
			return st.codeBlockDirective(name, args, start)
		}
	}

	st.pos++
	st.consumeIndented()

	comment := docs.NewNode(docs.KindComment)
	comment.Line = start + 1
	st.parent.AppendChild(comment)
	return nil
}

// codeBlockDirective builds a literal-block node tagged "code-block" from a
// code-block or sourcecode directive. The language is the directive's first
// argument, or empty when the directive has none.
func (st *parseState) codeBlockDirective(name, args string, start int) error {
	language := ""
	if args != "" {
		language = strings.Fields(args)[0]
	}

	st.pos++
	body := st.consumeIndented()
	body = stripOptions(body)
	body = trimBlankEdges(body)
	body = dedent(body)

	if len(body) == 0 {
		msg := fmt.Sprintf("Content block expected for the %q directive; none found.", name)
		return st.systemMessage(SeverityError, msg, start+1)
	}

	lit := docs.NewNode(docs.KindLiteralBlock)
	lit.Classes = []string{docs.ClassCodeBlock}
	lit.Language = language
	lit.RawText = strings.Join(body, "\n")
	lit.Line = start + 1
	st.parent.AppendChild(lit)
	return nil
}

// isTransition reports whether the current line is a lone adornment line
// (a transition), which produces no node.
func (st *parseState) isTransition() bool {
	if !isAdornment(st.lines[st.pos]) {
		return false
	}
	return st.pos+1 >= len(st.lines) || isBlank(st.lines[st.pos+1])
}

// isSectionTitle reports whether the current line is a section title, i.e.
// the next line is an adornment.
func (st *parseState) isSectionTitle() bool {
	return st.pos+1 < len(st.lines) && isAdornment(st.lines[st.pos+1])
}

// section consumes a title and its underline. Later blocks attach to the
// new section node. An underline shorter than the title is a warning.
func (st *parseState) section() error {
	title := strings.TrimRight(st.lines[st.pos], " \t")
	adorn := strings.TrimRight(st.lines[st.pos+1], " \t")
	titleLine := st.pos + 1
	st.pos += 2

	sec := docs.NewNode(docs.KindSection)
	sec.Line = titleLine
	sec.RawText = title
	st.root.AppendChild(sec)
	st.parent = sec

	if len(adorn) < len(title) {
		return st.systemMessage(SeverityWarning, "Title underline too short.", titleLine+1)
	}
	return nil
}

// paragraph consumes a run of flush-left text. A paragraph ending in "::"
// introduces a plain literal block (no code-block class) from the indented
// block that follows.
func (st *parseState) paragraph() error {
	start := st.pos
	var buf []string
	for st.pos < len(st.lines) {
		l := st.lines[st.pos]
		if isBlank(l) || indentOf(l) > 0 || isExplicitMarkup(l) {
			break
		}
		buf = append(buf, l)
		st.pos++
	}

	text := strings.Join(buf, "\n")
	para := docs.NewNode(docs.KindParagraph)
	para.Line = start + 1
	para.RawText = text
	st.parent.AppendChild(para)

	if !strings.HasSuffix(strings.TrimRight(text, " \t"), "::") {
		return nil
	}

	// "::" promises a literal block.
	save := st.pos
	for st.pos < len(st.lines) && isBlank(st.lines[st.pos]) {
		st.pos++
	}
	if st.pos >= len(st.lines) || indentOf(st.lines[st.pos]) == 0 {
		st.pos = save
		return st.systemMessage(SeverityWarning, "Literal block expected; none found.", start+len(buf))
	}

	litLine := st.pos + 1
	body := dedent(trimBlankEdges(st.consumeIndented()))

	lit := docs.NewNode(docs.KindLiteralBlock)
	lit.Line = litLine
	lit.RawText = strings.Join(body, "\n")
	st.parent.AppendChild(lit)
	return nil
}

// consumeIndented collects the indented block starting at the current
// position, including interior blank lines, and leaves the position on the
// first following flush-left line.
func (st *parseState) consumeIndented() []string {
	var body []string
	for st.pos < len(st.lines) {
		l := st.lines[st.pos]
		if !isBlank(l) && indentOf(l) == 0 {
			break
		}
		body = append(body, l)
		st.pos++
	}
	return body
}

// systemMessage records a markup problem. At or above the halt level it
// rejects the document; below it, it becomes a system-message node and
// parsing continues.
func (st *parseState) systemMessage(sev Severity, msg string, line int) error {
	text := fmt.Sprintf("(%s/%d) %s", sev, int(sev), msg)
	if sev >= st.halt {
		return &docs.ParseError{Path: st.path, Line: line, Message: text}
	}

	n := docs.NewNode(docs.KindSystemMessage)
	n.Line = line
	n.RawText = text
	st.parent.AppendChild(n)
	return nil
}

// isExplicitMarkup reports whether the line starts an explicit markup
// block: "..", optionally followed by whitespace and content.
func isExplicitMarkup(line string) bool {
	if line == ".." {
		return true
	}
	return strings.HasPrefix(line, ".. ") || strings.HasPrefix(line, "..\t")
}

// adornmentChars are the punctuation characters accepted in section
// underlines and transitions.
const adornmentChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// isAdornment reports whether the line is a single punctuation character
// repeated, optionally followed by trailing whitespace.
func isAdornment(line string) bool {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return false
	}
	c := line[0]
	if !strings.ContainsRune(adornmentChars, rune(c)) {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

// isBlank reports whether the line contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentOf returns the number of leading whitespace characters.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// splitLines normalizes line endings and splits the source into lines.
func splitLines(source []byte) []string {
	text := strings.ReplaceAll(string(source), "\r\n", "\n")
	return strings.Split(text, "\n")
}

// stripOptions drops a leading option field list (":linenos:" and friends)
// and its trailing blank separator from a directive body.
func stripOptions(body []string) []string {
	i := 0
	for i < len(body) && isBlank(body[i]) {
		i++
	}
	j := i
	for j < len(body) && optionRe.MatchString(body[j]) {
		j++
	}
	if j == i {
		return body
	}
	for j < len(body) && isBlank(body[j]) {
		j++
	}
	return body[j:]
}

// trimBlankEdges drops leading and trailing blank lines.
func trimBlankEdges(body []string) []string {
	start := 0
	for start < len(body) && isBlank(body[start]) {
		start++
	}
	end := len(body)
	for end > start && isBlank(body[end-1]) {
		end--
	}
	return body[start:end]
}

// dedent removes the common leading whitespace of all non-blank lines.
// Interior blank lines become empty strings.
func dedent(body []string) []string {
	minIndent := -1
	for _, l := range body {
		if isBlank(l) {
			continue
		}
		if n := indentOf(l); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return body
	}

	out := make([]string, len(body))
	for i, l := range body {
		if isBlank(l) {
			out[i] = ""
			continue
		}
		out[i] = l[minIndent:]
	}
	return out
}
