package service

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// Test Plan for the path resolver:
// - Single supported file resolves to one target with its language
// - Single unsupported file resolves to one errored target (recorded,
//   not dropped)
// - Directory walks collect only registered extensions, in sorted order
// - Ignore patterns prune files and whole directories
// - "**/" prefixed patterns also match root-level files
// - A nonexistent root fails with io_failure

func newTestResolver(t *testing.T, ignore []string) *Resolver {
	t.Helper()
	registry, err := lang.NewRegistry(lang.Options{ForwardDecls: true})
	require.NoError(t, err)
	resolver, err := NewResolver(registry, ignore)
	require.NoError(t, err)
	return resolver
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestResolver_SingleFile(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)
	dir := writeTree(t, map[string]string{"a.cpp": "int x;\n"})

	targets, err := resolver.Resolve(filepath.Join(dir, "a.cpp"))
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.NoError(t, targets[0].Err)
	assert.Equal(t, "cpp", targets[0].Language.Name)
}

func TestResolver_SingleUnsupportedFile(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)
	dir := writeTree(t, map[string]string{"notes.txt": "hello\n"})

	targets, err := resolver.Resolve(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.ErrorIs(t, targets[0].Err, lang.ErrUnsupported)
	assert.Nil(t, targets[0].Language)
}

func TestResolver_DirectoryWalk(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)
	dir := writeTree(t, map[string]string{
		"b.cpp":        "int b;\n",
		"a.cpp":        "int a;\n",
		"sub/c.go":     "package c\n",
		"notes.txt":    "skip me\n",
		"sub/ignore.o": "binary\n",
	})

	targets, err := resolver.Resolve(dir)
	require.NoError(t, err)

	var names []string
	for _, target := range targets {
		require.NoError(t, target.Err)
		rel, _ := filepath.Rel(dir, target.Path)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.cpp", "b.cpp", "sub/c.go"}, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestResolver_IgnorePatterns(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, []string{"build/**", "**/*.gen.cpp"})
	dir := writeTree(t, map[string]string{
		"a.cpp":           "int a;\n",
		"api.gen.cpp":     "int g;\n",
		"build/out.cpp":   "int o;\n",
		"sub/x.gen.cpp":   "int x;\n",
		"sub/kept.cpp":    "int k;\n",
		"build/deep/d.go": "package d\n",
	})

	targets, err := resolver.Resolve(dir)
	require.NoError(t, err)

	var names []string
	for _, target := range targets {
		rel, _ := filepath.Rel(dir, target.Path)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"a.cpp", "sub/kept.cpp"}, names)
}

func TestResolver_NonexistentRoot(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver(t, nil)
	_, err := resolver.Resolve(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeIOFailure, fe.Code)
}

func TestResolver_BadIgnorePattern(t *testing.T) {
	t.Parallel()

	registry, err := lang.NewRegistry(lang.Options{})
	require.NoError(t, err)
	_, err = NewResolver(registry, []string{"["})
	assert.Error(t, err)
}
