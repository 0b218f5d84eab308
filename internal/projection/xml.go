package projection

import (
	"regexp"
	"strings"
)

// Header identifies the projected file in the rendered output.
type Header struct {
	File      string
	Language  string
	Mode      Mode
	SearchKey string
}

// SearchHeader builds the header for a search projection. The keywords
// are recorded in caller order.
func SearchHeader(file, language string, keywords []string) Header {
	return Header{
		File:      file,
		Language:  language,
		Mode:      ModeSearch,
		SearchKey: strings.Join(keywords, ", "),
	}
}

// Render serializes a projection. The output carries no XML declaration,
// indents two spaces per depth, and is byte-identical for identical
// inputs: attributes keep insertion order and the header attribute order
// is file, language, mode, search_key. A nil root renders as a childless
// header element.
func Render(h Header, root *Element) string {
	ast := &Element{Tag: "ast"}
	ast.setAttr("file", h.File)
	ast.setAttr("language", h.Language)
	ast.setAttr("mode", string(h.Mode))
	if h.Mode == ModeSearch {
		ast.setAttr("search_key", h.SearchKey)
	}
	if root != nil {
		ast.Children = []*Element{root}
	}

	var lines []string
	writeElement(&lines, ast, 0)
	return strings.Join(lines, "\n")
}

// RenderError formats the per-file error marker recorded in batch result
// maps in place of a projection.
func RenderError(file, code, message string) string {
	el := &Element{Tag: "error", Content: message}
	el.setAttr("file", file)
	el.setAttr("code", code)
	var lines []string
	writeElement(&lines, el, 0)
	return strings.Join(lines, "\n")
}

func writeElement(lines *[]string, e *Element, depth int) {
	indent := strings.Repeat("  ", depth)
	tag := sanitizeTag(e.Tag)

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteString(`"`)
	}

	switch {
	case len(e.Children) > 0:
		b.WriteString(">")
		*lines = append(*lines, b.String())
		for _, c := range e.Children {
			writeElement(lines, c, depth+1)
		}
		*lines = append(*lines, indent+"</"+tag+">")
	case e.Content != "":
		b.WriteString(">")
		b.WriteString(escapeText(e.Content))
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">")
		*lines = append(*lines, b.String())
	default:
		b.WriteString("/>")
		*lines = append(*lines, b.String())
	}
}

var invalidTagChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// sanitizeTag makes a grammar kind usable as a tag name: invalid
// characters become underscores, names that cannot start a tag get an
// n_ prefix, and an empty result falls back to "node". Anonymous
// punctuation kinds like "{" therefore render as "_".
func sanitizeTag(name string) string {
	s := invalidTagChars.ReplaceAllString(name, "_")
	if s == "" {
		return "node"
	}
	c := s[0]
	if (c >= '0' && c <= '9') || c == '-' || c == '.' || c == '_' {
		s = "n_" + s
	}
	return s
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#09;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
)

// escapeText escapes reserved markup characters in element content.
// Quotes stay literal in text position.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes attribute values, including control whitespace so a
// value never spans lines.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
