package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrUnsupported reports a file whose extension maps to no registered
// language.
var ErrUnsupported = errors.New("unsupported language")

// Language bundles a grammar with its classification table.
type Language struct {
	Name       string
	Extensions []string
	Grammar    *sitter.Language
	Table      *Table
}

// Options controls registry construction.
type Options struct {
	// ForwardDecls folds each table's forward declaration kinds into its
	// definition set.
	ForwardDecls bool
	// Languages restricts the registered set by name. Empty means all.
	Languages []string
}

// Registry resolves file paths to languages.
type Registry struct {
	byName map[string]*Language
	byExt  map[string]*Language
}

// NewRegistry builds a registry over the built-in languages.
func NewRegistry(opts Options) (*Registry, error) {
	all := []Language{
		cLanguage(),
		cppLanguage(),
		goLanguage(),
		javaLanguage(),
		phpLanguage(),
		pythonLanguage(),
		rubyLanguage(),
		rustLanguage(),
		typescriptLanguage(),
	}

	var allow map[string]bool
	if len(opts.Languages) > 0 {
		allow = make(map[string]bool, len(opts.Languages))
		for _, name := range opts.Languages {
			allow[strings.ToLower(name)] = true
		}
	}

	r := &Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
	}
	for i := range all {
		l := all[i]
		if allow != nil && !allow[l.Name] {
			continue
		}
		if opts.ForwardDecls {
			l.Table = l.Table.withForwardDecls()
		}
		r.byName[l.Name] = &l
		for _, ext := range l.Extensions {
			r.byExt[ext] = &l
		}
	}

	if allow != nil {
		for name := range allow {
			if _, ok := r.byName[name]; !ok {
				return nil, fmt.Errorf("unknown language in allow list: %s", name)
			}
		}
	}

	return r, nil
}

// Detect returns the language for a file path based on its extension.
func (r *Registry) Detect(path string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	return l, nil
}

// Supports reports whether the extension of path maps to a registered
// language.
func (r *Registry) Supports(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Get returns a registered language by name.
func (r *Registry) Get(name string) (*Language, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// Names returns the registered language names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
