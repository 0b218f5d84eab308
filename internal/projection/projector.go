package projection

import (
	"errors"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// Mode selects a projection.
type Mode string

const (
	ModeFull     Mode = "full"
	ModeOverview Mode = "overview"
	ModeSearch   Mode = "search"
)

// ErrInvalidMode reports a mode string outside full|overview.
var ErrInvalidMode = errors.New("invalid projection mode")

// ParseMode validates a caller-supplied mode string for project
// operations. Search is a separate operation and is not accepted here.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFull, ModeOverview:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Project builds the full or overview projection of a parse tree.
func Project(root *sitter.Node, source []byte, table *lang.Table, mode Mode) (*Element, error) {
	switch mode {
	case ModeFull:
		return fullElement(root, source, table), nil
	case ModeOverview:
		return projectOverview(root, source, table), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// fullElement emits an element for every node. Line ranges are attached
// only to definition and comment nodes; comments carry no content or
// children; leaves inline their literal text.
func fullElement(node *sitter.Node, source []byte, table *lang.Table) *Element {
	kind := node.Kind()
	cat := table.Classify(kind)

	el := &Element{Tag: kind}
	if cat == lang.Definition || cat == lang.Comment {
		el.setAttr("line_range", lineRange(node))
	}
	if cat == lang.Comment {
		return el
	}
	if cat == lang.Definition {
		attachSnippet(el, node, source, table)
	}

	if node.ChildCount() == 0 {
		el.Content = nodeText(node, source)
		return el
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if zeroWidthLeaf(child) {
			continue
		}
		el.Children = append(el.Children, fullElement(child, source, table))
	}
	return el
}

// projectOverview keeps definition and comment nodes plus whatever is
// needed to reach them. Plain nodes are never emitted; their kept
// descendants are reparented under the nearest kept ancestor, which keeps
// the overview shallow.
func projectOverview(root *sitter.Node, source []byte, table *lang.Table) *Element {
	if table.Classify(root.Kind()) != lang.Plain {
		nodes := overviewNodes(root, source, table)
		if len(nodes) == 1 {
			return nodes[0]
		}
	}
	// Root kind absent from the table: still emit a root so the caller
	// always sees one element per file.
	el := &Element{Tag: root.Kind()}
	for i := uint(0); i < root.ChildCount(); i++ {
		el.Children = append(el.Children, overviewNodes(root.Child(i), source, table)...)
	}
	return el
}

// overviewNodes is the bottom-up keep fold: a node survives iff it is a
// definition or comment, or one of its descendants survives.
func overviewNodes(node *sitter.Node, source []byte, table *lang.Table) []*Element {
	kind := node.Kind()
	cat := table.Classify(kind)

	if cat == lang.Comment {
		el := &Element{Tag: kind}
		el.setAttr("line_range", lineRange(node))
		return []*Element{el}
	}

	var kept []*Element
	for i := uint(0); i < node.ChildCount(); i++ {
		kept = append(kept, overviewNodes(node.Child(i), source, table)...)
	}

	if cat != lang.Definition {
		return kept
	}

	el := &Element{Tag: kind}
	el.setAttr("line_range", lineRange(node))
	attachSnippet(el, node, source, table)
	if node.ChildCount() == 0 {
		el.Content = nodeText(node, source)
	}
	el.Children = kept
	return []*Element{el}
}

// attachSnippet adds the table-defined snippet attribute for a kept
// definition: the normalized source prefix preceding the construct's
// body.
func attachSnippet(el *Element, node *sitter.Node, source []byte, table *lang.Table) {
	rule, ok := table.Snippet(node.Kind())
	if !ok {
		return
	}
	start := node.StartByte()
	if rule.FromParent {
		if p := node.Parent(); p != nil {
			start = p.StartByte()
		}
	}
	text := string(source[start:node.EndByte()])
	if rule.Stop != "" {
		if i := strings.IndexAny(text, rule.Stop); i >= 0 {
			text = text[:i]
		}
	}
	el.setAttr(rule.Attr, normalizeWhitespace(text))
}

// normalizeWhitespace collapses all whitespace runs to single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lineRange formats the 1-based inclusive line span of a node.
func lineRange(node *sitter.Node) string {
	return fmt.Sprintf("%d-%d", node.StartPosition().Row+1, node.EndPosition().Row+1)
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// zeroWidthLeaf reports childless nodes covering no source bytes, such
// as tokens inserted by error recovery. They carry neither text nor
// children and are suppressed in every mode.
func zeroWidthLeaf(node *sitter.Node) bool {
	return node.ChildCount() == 0 && node.StartByte() == node.EndByte()
}
