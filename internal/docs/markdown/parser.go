package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Ishaan29/rstcheck/internal/docs"
)

// Parser parses CommonMark source into a docs tree using goldmark.
type Parser struct{}

// NewParser creates a markdown Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements docs.Parser. It never returns an error: CommonMark has
// no ill-formed documents.
func (p *Parser) Parse(source []byte, path string) (*docs.Node, error) {
	_ = path

	gm := goldmark.DefaultParser()
	md := gm.Parse(text.NewReader(source))

	root := docs.NewNode(docs.KindDocument)
	root.Line = 1

	err := ast.Walk(md, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch b := n.(type) {
		case *ast.FencedCodeBlock:
			root.AppendChild(fencedNode(b, source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			// Indented code block: plain literal, never checked.
			lit := docs.NewNode(docs.KindLiteralBlock)
			lit.RawText = blockText(b, source)
			lit.Line = blockLine(b, source, 0)
			root.AppendChild(lit)
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			sec := docs.NewNode(docs.KindSection)
			sec.Line = blockLine(b, source, 0)
			root.AppendChild(sec)
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			para := docs.NewNode(docs.KindParagraph)
			para.Line = blockLine(b, source, 0)
			root.AppendChild(para)
			return ast.WalkSkipChildren, nil
		default:
			return ast.WalkContinue, nil
		}
	})
	if err != nil {
		// The visitor never fails; keep the contract explicit anyway.
		return nil, &docs.ParseError{Path: path, Message: err.Error()}
	}
	return root, nil
}

// fencedNode converts a fenced code block into a code-block literal node.
func fencedNode(b *ast.FencedCodeBlock, source []byte) *docs.Node {
	lit := docs.NewNode(docs.KindLiteralBlock)
	lit.Classes = []string{docs.ClassCodeBlock}
	lit.RawText = blockText(b, source)

	if lang := b.Language(source); lang != nil {
		lit.Language = string(lang)
	}

	if b.Info != nil {
		// The info string sits on the fence line itself.
		lit.Line = lineAt(source, b.Info.Segment.Start)
	} else {
		// No info string: the fence is one line above the first
		// content line.
		lit.Line = blockLine(b, source, -1)
	}
	return lit
}

// blockText joins a block's line segments and drops the trailing newline,
// matching the raw text shape the rst parser produces.
func blockText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// blockLine returns the 1-based line of the block's first content segment
// plus the given offset, or 1 when the block has no content.
func blockLine(n ast.Node, source []byte, offset int) int {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 1
	}
	line := lineAt(source, lines.At(0).Start) + offset
	if line < 1 {
		return 1
	}
	return line
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
