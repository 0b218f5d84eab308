// Package lang maps grammar node kinds to projection categories.
//
// Classification is table-driven: each language contributes a Table of
// kind names, so grammar updates and new languages mean new rows, not new
// code paths. Unknown kinds classify as Plain.
package lang

// Category is the projection-relevant classification of a node kind.
type Category int

const (
	// Plain is everything the tables do not name.
	Plain Category = iota
	// Definition covers kinds that introduce a named construct.
	Definition
	// Comment covers source comment kinds.
	Comment
)

// SnippetRule describes the source snippet attached to a kept definition.
// Text is whitespace-normalized and, when Stop is non-empty, cut before
// the first occurrence of any byte in Stop. FromParent widens the span to
// start at the parent node's start byte, which turns a bare declarator
// into a full signature including the return type.
type SnippetRule struct {
	Attr       string
	Stop       string
	FromParent bool
}

// Attribute names used by snippet rules.
const (
	AttrDeclarationText = "declaration_text"
	AttrTemplateText    = "template_text"
)

func declPrefix(stop string) SnippetRule {
	return SnippetRule{Attr: AttrDeclarationText, Stop: stop}
}

// Table classifies node kinds for one language.
type Table struct {
	// Definitions lists kinds that always classify as Definition.
	Definitions map[string]bool
	// ForwardDecls lists kinds counted as definitions only when the
	// registry is built with forward declarations enabled (whether a
	// body-less prototype is a definition is a per-deployment choice).
	ForwardDecls map[string]bool
	// Comments lists comment kinds.
	Comments map[string]bool
	// Snippets maps definition kinds to their snippet rule. Kinds
	// without a rule (the root kind in particular) carry no snippet.
	Snippets map[string]SnippetRule
}

// Classify returns the category for a node kind. Pure and total: kinds
// missing from the tables are Plain.
func (t *Table) Classify(kind string) Category {
	switch {
	case t.Definitions[kind]:
		return Definition
	case t.Comments[kind]:
		return Comment
	default:
		return Plain
	}
}

// Snippet returns the snippet rule for a kind, if any.
func (t *Table) Snippet(kind string) (SnippetRule, bool) {
	r, ok := t.Snippets[kind]
	return r, ok
}

// withForwardDecls returns a copy of the table with the forward
// declaration kinds folded into the definition set.
func (t *Table) withForwardDecls() *Table {
	defs := make(map[string]bool, len(t.Definitions)+len(t.ForwardDecls))
	for k := range t.Definitions {
		defs[k] = true
	}
	for k := range t.ForwardDecls {
		defs[k] = true
	}
	return &Table{
		Definitions:  defs,
		ForwardDecls: t.ForwardDecls,
		Comments:     t.Comments,
		Snippets:     t.Snippets,
	}
}
