package treecache

import (
	"fmt"
	"os"
	"sync"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// Cache maps file paths to parse trees keyed by modification time.
// Entries live for the process lifetime; they are replaced when the
// on-disk timestamp differs in any way from the stored one and are
// removed only by Invalidate or Clear. Replaced trees are released by
// their finalizers once no caller references them.
type Cache struct {
	engine Engine

	mu      sync.Mutex
	entries map[string]*entry
}

// entry serializes the stat-compare-parse-store sequence for one path.
// Different paths proceed independently.
type entry struct {
	mu     sync.Mutex
	mtime  time.Time
	lang   string
	tree   *sitter.Tree
	source []byte
}

// New creates a cache backed by the given parsing engine.
func New(engine Engine) *Cache {
	return &Cache{
		engine:  engine,
		entries: make(map[string]*entry),
	}
}

// GetOrParse returns the parse tree and source bytes for path, reusing
// the cached tree when the modification timestamp is unchanged. Any
// timestamp difference, older included, forces a re-parse: clock skew or
// a touch without an edit must still refresh the tree. On read failure
// the existing entry is left untouched.
func (c *Cache) GetOrParse(path string, l *lang.Language) (*sitter.Tree, []byte, error) {
	e := c.entry(path)
	e.mu.Lock()
	defer e.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	mtime := info.ModTime()

	if e.tree != nil && e.lang == l.Name && mtime.Equal(e.mtime) {
		return e.tree, e.source, nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := c.engine.Parse(source, l)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	e.mtime = mtime
	e.lang = l.Name
	e.tree = tree
	e.source = source
	return tree, source, nil
}

// Invalidate drops the entry for path, if any. The next request
// re-parses regardless of timestamps.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Len reports the number of cached paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) entry(path string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok {
		e = &entry{}
		c.entries[path] = e
	}
	return e
}
