// Package projection turns parsed syntax trees into textual XML-like
// projections: a full structural view, a definitions-only overview, and a
// keyword-search view that prunes branches without matches.
//
// Projections are built as fresh immutable element trees by bottom-up
// folds over the parse tree; the parse tree is never mutated. Rendering
// is deterministic: identical element trees serialize to identical bytes.
package projection

// Attr is a single rendered attribute. Attributes keep insertion order;
// rendering never sorts them.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a projection. Tag is the raw grammar kind;
// sanitization for the wire format happens at render time. Content is
// inline literal text for leaves; an empty Content renders as a
// self-closed element.
type Element struct {
	Tag      string
	Attrs    []Attr
	Content  string
	Children []*Element
}

func (e *Element) setAttr(name, value string) {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of a named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first element in the subtree (depth-first, e included)
// with the given tag.
func (e *Element) Find(tag string) *Element {
	if e.Tag == tag {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element in the subtree (depth-first, e included)
// with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	if e.Tag == tag {
		out = append(out, e)
	}
	for _, c := range e.Children {
		out = append(out, c.FindAll(tag)...)
	}
	return out
}

// Walk visits the subtree depth-first, e included.
func (e *Element) Walk(visit func(*Element)) {
	visit(e)
	for _, c := range e.Children {
		c.Walk(visit)
	}
}
