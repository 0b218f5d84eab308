package projection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Serializer:
// - Header carries file, language, mode in fixed order; search adds
//   search_key joining keywords with ", "
// - Elements with children open and close over indented lines; inline
//   content renders on one line; neither renders self-closed
// - Reserved markup characters are escaped in text and attributes,
//   control whitespace only in attributes
// - Grammar kinds become valid tag names (punctuation, leading digits,
//   empty kinds)
// - A nil root renders as a childless header element
// - Error markers carry file and code attributes

func TestRender_Structure(t *testing.T) {
	t.Parallel()

	root := &Element{Tag: "translation_unit"}
	root.setAttr("line_range", "1-9")
	fn := &Element{Tag: "function_definition"}
	fn.setAttr("line_range", "4-9")
	fn.setAttr("declaration_text", "int factorial(int n)")
	leaf := &Element{Tag: "identifier", Content: "factorial"}
	leaf.setAttr("line_range", "4-4")
	leaf.setAttr("match", "true")
	fn.Children = []*Element{leaf}
	root.Children = []*Element{fn}

	got := Render(Header{File: "a.cpp", Language: "cpp", Mode: ModeFull}, root)
	want := strings.Join([]string{
		`<ast file="a.cpp" language="cpp" mode="full">`,
		`  <translation_unit line_range="1-9">`,
		`    <function_definition line_range="4-9" declaration_text="int factorial(int n)">`,
		`      <identifier line_range="4-4" match="true">factorial</identifier>`,
		`    </function_definition>`,
		`  </translation_unit>`,
		`</ast>`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_SearchHeader(t *testing.T) {
	t.Parallel()

	h := SearchHeader("a.cpp", "cpp", []string{"foo", "bar"})
	assert.Equal(t, "foo, bar", h.SearchKey)

	got := Render(h, nil)
	assert.Equal(t, `<ast file="a.cpp" language="cpp" mode="search" search_key="foo, bar"/>`, got)
}

func TestRender_SelfClosedLeaf(t *testing.T) {
	t.Parallel()

	root := &Element{Tag: "translation_unit"}
	root.Children = []*Element{{Tag: "comment"}}

	got := Render(Header{File: "a.cpp", Language: "cpp", Mode: ModeOverview}, root)
	assert.Contains(t, got, "  <translation_unit>\n    <comment/>\n  </translation_unit>")
}

func TestRender_Escaping(t *testing.T) {
	t.Parallel()

	el := &Element{Tag: "binary_expression", Content: `a < b && c > "d"`}
	el.setAttr("declaration_text", "vector<int>\tf()\n")

	got := Render(Header{File: "x.cpp", Language: "cpp", Mode: ModeFull}, el)
	assert.Contains(t, got, `a &lt; b &amp;&amp; c &gt; "d"`)
	assert.Contains(t, got, `declaration_text="vector&lt;int&gt;&#09;f()&#10;"`)
	assert.NotContains(t, got, "\t")
}

func TestRender_TagSanitization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want string
	}{
		{"function_definition", "function_definition"},
		{"{", "n__"},
		{"<=", "n___"},
		{"3way", "n_3way"},
		{".field", "n_.field"},
		{"", "node"},
	}
	for _, tt := range tests {
		root := &Element{Tag: tt.kind}
		got := Render(Header{File: "x", Language: "c", Mode: ModeFull}, root)
		assert.Contains(t, got, "<"+tt.want+"/>", "kind %q", tt.kind)
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	got := RenderError("missing.cpp", "io_failure", "stat missing.cpp: no such file")
	assert.Equal(t, `<error file="missing.cpp" code="io_failure">stat missing.cpp: no such file</error>`, got)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	el := &Element{Tag: "a"}
	el.setAttr("line_range", "1-2")
	el.setAttr("match", "true")
	el.Children = []*Element{{Tag: "b", Content: "x"}, {Tag: "c"}}

	h := Header{File: "f", Language: "c", Mode: ModeFull}
	first := Render(h, el)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Render(h, el))
	}
}
