package projection

import (
	"errors"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// ErrNoKeywords reports an empty or blank keyword list, which cannot
// produce a meaningful prune.
var ErrNoKeywords = errors.New("search requires at least one non-empty keyword")

// ValidateKeywords rejects keyword lists that search cannot use.
func ValidateKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return ErrNoKeywords
	}
	for _, kw := range keywords {
		if kw == "" {
			return ErrNoKeywords
		}
	}
	return nil
}

// Search builds the keyword projection: every subtree without a match is
// pruned. Leaves match by case-sensitive substring, interior nodes only
// by whole-text equality (otherwise every ancestor of a match would match
// too). Multiple keywords are independent searches whose matches are
// unioned before pruning. Returns nil when nothing matches.
func Search(root *sitter.Node, source []byte, table *lang.Table, keywords []string) (*Element, error) {
	if err := ValidateKeywords(keywords); err != nil {
		return nil, err
	}
	return searchNode(root, source, table, keywords), nil
}

func searchNode(node *sitter.Node, source []byte, table *lang.Table, keywords []string) *Element {
	kind := node.Kind()
	text := nodeText(node, source)

	if node.ChildCount() == 0 {
		if zeroWidthLeaf(node) || !containsAny(text, keywords) {
			return nil
		}
		el := &Element{Tag: kind}
		el.setAttr("line_range", lineRange(node))
		el.setAttr("match", "true")
		el.Content = text
		return el
	}

	var kept []*Element
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := searchNode(node.Child(i), source, table, keywords); child != nil {
			kept = append(kept, child)
		}
	}

	exact := equalsAny(text, keywords)
	if !exact && len(kept) == 0 {
		return nil
	}

	el := &Element{Tag: kind}
	el.setAttr("line_range", lineRange(node))
	if exact {
		el.setAttr("match", "true")
	}
	if table.Classify(kind) == lang.Definition {
		attachSnippet(el, node, source, table)
	}
	el.Children = kept
	return el
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func equalsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if text == kw {
			return true
		}
	}
	return false
}
