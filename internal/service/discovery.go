// Package service resolves caller-supplied paths into projection targets
// and orchestrates per-file projection batches.
package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// Target is one file to project, paired with its detected language. Err
// is set when detection failed for an explicitly named file; such targets
// still appear in the result map as error markers.
type Target struct {
	Path     string
	Language *lang.Language
	Err      error
}

// compiledPattern holds both the pattern string and its compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Resolver expands a path into the set of files to process. A single
// file is taken as-is; a directory is walked recursively in lexical
// order, keeping only files whose extension maps to a registered
// language and skipping ignore-pattern matches.
type Resolver struct {
	registry *lang.Registry
	ignore   []compiledPattern
}

// NewResolver compiles the ignore patterns (slash-separated globs
// matched against paths relative to the walked directory).
func NewResolver(registry *lang.Registry, ignorePatterns []string) (*Resolver, error) {
	r := &Resolver{registry: registry}
	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad ignore pattern %q: %w", pattern, err)
		}
		r.ignore = append(r.ignore, compiledPattern{pattern: pattern, glob: g})
	}
	return r, nil
}

// Resolve returns the targets under path. A missing or unreadable root
// fails the whole call; everything past the root is per-file.
func (r *Resolver) Resolve(path string) ([]Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Path: path, Code: CodeIOFailure, Err: err}
	}

	if !info.IsDir() {
		l, err := r.registry.Detect(path)
		if err != nil {
			// Explicitly named files are never silently dropped: the
			// unsupported extension becomes an error marker downstream.
			return []Target{{Path: path, Err: err}}, nil
		}
		return []Target{{Path: path, Language: l}}, nil
	}

	var targets []Target
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return err
			}
			return nil
		}
		rel, relErr := filepath.Rel(path, p)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if r.Ignored(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if r.Ignored(rel) {
			return nil
		}
		l, err := r.registry.Detect(p)
		if err != nil {
			// Unsupported extensions inside a directory walk are not
			// targets; directories are filtered, not enumerated.
			return nil
		}
		targets = append(targets, Target{Path: p, Language: l})
		return nil
	})
	if walkErr != nil {
		return nil, &FileError{Path: path, Code: CodeIOFailure, Err: walkErr}
	}
	return targets, nil
}

// Ignored reports whether a slash-separated relative path matches an
// ignore pattern. Directory paths also match their own "/**" expansion
// so that "node_modules/**" prunes the node_modules directory itself.
func (r *Resolver) Ignored(relPath string) bool {
	if r.matchesAny(relPath) {
		return true
	}
	return r.matchesAny(relPath + "/**")
}

func (r *Resolver) matchesAny(path string) bool {
	for _, cp := range r.ignore {
		if cp.glob.Match(path) {
			return true
		}
	}

	// Root-level files have no slash, which "**/" prefixed patterns
	// never match; retry with the prefix stripped so "**/*.min.js"
	// also covers "app.min.js" at the root.
	if !strings.Contains(path, "/") {
		for _, cp := range r.ignore {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if g, err := glob.Compile(simplified, '/'); err == nil && g.Match(path) {
					return true
				}
			}
		}
	}
	return false
}
