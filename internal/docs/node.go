package docs

// NodeKind identifies the construct a Node represents.
type NodeKind int

const (
	// KindDocument is the root node of a parsed document.
	KindDocument NodeKind = iota

	// KindSection is a titled section.
	KindSection

	// KindParagraph is a run of body text.
	KindParagraph

	// KindLiteralBlock is preformatted text. Code samples are literal
	// blocks carrying the ClassCodeBlock class and a Language.
	KindLiteralBlock

	// KindComment is a markup comment, never checked.
	KindComment

	// KindSystemMessage is a markup problem reported by the parser in
	// permissive mode.
	KindSystemMessage
)

// String returns a human-readable representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindSection:
		return "section"
	case KindParagraph:
		return "paragraph"
	case KindLiteralBlock:
		return "literal_block"
	case KindComment:
		return "comment"
	case KindSystemMessage:
		return "system_message"
	default:
		return "unknown"
	}
}

// ClassCodeBlock marks a literal block as a checkable code sample, as
// opposed to arbitrary preformatted text.
const ClassCodeBlock = "code-block"

// Node is one node in a parsed document tree. Parsers build nodes; the
// checker only reads them.
type Node struct {
	// Kind identifies the construct.
	Kind NodeKind

	// Classes are classification tags attached by the parser.
	Classes []string

	// Language is the declared language of a code-block literal.
	// Empty when the directive had no argument or the node is not a
	// code block.
	Language string

	// RawText is the node's raw source text. For literal blocks this is
	// the exact snippet to check.
	RawText string

	// Line is the 1-based source line where the construct starts.
	Line int

	// Children are the node's child nodes in document order.
	Children []*Node
}

// NewNode creates a node of the given kind with no children.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AppendChild adds a child node, preserving document order.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// HasClass reports whether the node carries the given classification tag.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// IsCodeBlock reports whether the node is a literal block tagged as a
// checkable code sample.
func (n *Node) IsCodeBlock() bool {
	return n.Kind == KindLiteralBlock && n.HasClass(ClassCodeBlock)
}

// WalkStatus tells Walk how to proceed after visiting a node.
type WalkStatus int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkStatus = iota

	// WalkSkipChildren continues the traversal without descending into
	// the node's children.
	WalkSkipChildren
)

// Visitor is called once per node in document order.
type Visitor func(n *Node) WalkStatus

// Walk traverses the tree rooted at n depth-first in document order,
// calling fn exactly once per node. When fn returns WalkSkipChildren the
// node's subtree is pruned and traversal continues with its next sibling.
func Walk(n *Node, fn Visitor) {
	if fn(n) == WalkSkipChildren {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}
