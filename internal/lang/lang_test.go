package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for classification tables and the registry:
// - Classify is total: definition kinds, comment kinds, everything else
//   Plain, unknown kinds included
// - Forward declaration kinds count as definitions only when enabled
// - Snippet rules resolve per kind
// - Detection maps extensions (case-insensitive) to languages
// - Unsupported extensions yield ErrUnsupported
// - The allow-list restricts the registered set and rejects unknown names
// - Every registered language exposes a grammar and a root definition

func TestTable_Classify(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{})
	require.NoError(t, err)
	cpp, ok := registry.Get("cpp")
	require.True(t, ok)

	assert.Equal(t, Definition, cpp.Table.Classify("function_definition"))
	assert.Equal(t, Definition, cpp.Table.Classify("class_specifier"))
	assert.Equal(t, Comment, cpp.Table.Classify("comment"))
	assert.Equal(t, Plain, cpp.Table.Classify("if_statement"))
	assert.Equal(t, Plain, cpp.Table.Classify("some_future_grammar_kind"))
	assert.Equal(t, Plain, cpp.Table.Classify(""))
}

func TestTable_ForwardDecls(t *testing.T) {
	t.Parallel()

	withoutFwd, err := NewRegistry(Options{})
	require.NoError(t, err)
	withFwd, err := NewRegistry(Options{ForwardDecls: true})
	require.NoError(t, err)

	plain, _ := withoutFwd.Get("cpp")
	fwd, _ := withFwd.Get("cpp")

	assert.Equal(t, Plain, plain.Table.Classify("function_declarator"))
	assert.Equal(t, Definition, fwd.Table.Classify("function_declarator"))
	// Plain definitions are unaffected by the switch.
	assert.Equal(t, Definition, plain.Table.Classify("function_definition"))
	assert.Equal(t, Definition, fwd.Table.Classify("function_definition"))
}

func TestTable_Snippets(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{})
	require.NoError(t, err)
	cpp, _ := registry.Get("cpp")

	rule, ok := cpp.Table.Snippet("function_definition")
	require.True(t, ok)
	assert.Equal(t, AttrDeclarationText, rule.Attr)
	assert.Equal(t, "{;", rule.Stop)

	rule, ok = cpp.Table.Snippet("template_declaration")
	require.True(t, ok)
	assert.Equal(t, AttrTemplateText, rule.Attr)
	assert.Equal(t, ">", rule.Stop)

	rule, ok = cpp.Table.Snippet("function_declarator")
	require.True(t, ok)
	assert.True(t, rule.FromParent)

	// The root kind carries no snippet.
	_, ok = cpp.Table.Snippet("translation_unit")
	assert.False(t, ok)
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{})
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"main.c", "c"},
		{"main.cpp", "cpp"},
		{"widget.hpp", "cpp"},
		{"WIDGET.CC", "cpp"},
		{"server.go", "go"},
		{"App.java", "java"},
		{"index.php", "php"},
		{"script.py", "python"},
		{"types.pyi", "python"},
		{"model.rb", "ruby"},
		{"lib.rs", "rust"},
		{"app.ts", "typescript"},
		{"view.tsx", "typescript"},
	}
	for _, tt := range tests {
		l, err := registry.Detect(tt.path)
		require.NoError(t, err, "path %s", tt.path)
		assert.Equal(t, tt.want, l.Name, "path %s", tt.path)
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{})
	require.NoError(t, err)

	for _, path := range []string{"README.md", "notes.txt", "Makefile", "image.png"} {
		_, err := registry.Detect(path)
		assert.ErrorIs(t, err, ErrUnsupported, "path %s", path)
		assert.False(t, registry.Supports(path))
	}
}

func TestRegistry_AllowList(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{Languages: []string{"cpp", "go"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"cpp", "go"}, registry.Names())
	assert.True(t, registry.Supports("a.cpp"))
	assert.False(t, registry.Supports("a.py"))

	_, err = NewRegistry(Options{Languages: []string{"cobol"}})
	assert.Error(t, err)
}

func TestRegistry_AllLanguagesWellFormed(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(Options{})
	require.NoError(t, err)

	names := registry.Names()
	assert.Len(t, names, 9)
	for _, name := range names {
		l, ok := registry.Get(name)
		require.True(t, ok)
		assert.NotNil(t, l.Grammar, "language %s", name)
		assert.NotEmpty(t, l.Extensions, "language %s", name)
		require.NotNil(t, l.Table, "language %s", name)
		assert.NotEmpty(t, l.Table.Definitions, "language %s", name)
		assert.NotEmpty(t, l.Table.Comments, "language %s", name)
	}
}
