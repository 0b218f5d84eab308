// Package treecache keeps parsed syntax trees consistent with their
// source files using the modification timestamp as the sole invalidation
// signal.
package treecache

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/RedSiamese/sitter-tree-mcp/internal/lang"
)

// Engine turns source bytes into a parse tree. The cache talks to the
// parser only through this interface so tests can interpose a
// parse-counting probe.
type Engine interface {
	Parse(source []byte, language *lang.Language) (*sitter.Tree, error)
}

// sitterEngine keeps one parser per language. A parser instance is
// reusable across sequential calls but not safe for concurrent use, so
// each slot is mutex-guarded.
type sitterEngine struct {
	mu    sync.Mutex
	slots map[string]*parserSlot
}

type parserSlot struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewEngine creates the production parsing engine.
func NewEngine() Engine {
	return &sitterEngine{slots: make(map[string]*parserSlot)}
}

func (e *sitterEngine) slot(l *lang.Language) (*parserSlot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.slots[l.Name]; ok {
		return s, nil
	}

	parser := sitter.NewParser()
	if err := parser.SetLanguage(l.Grammar); err != nil {
		parser.Close()
		return nil, fmt.Errorf("set language %s: %w", l.Name, err)
	}
	s := &parserSlot{parser: parser}
	e.slots[l.Name] = s
	return s, nil
}

// Parse parses source with the language's grammar. Tree-sitter grammars
// are error-tolerant: a tree comes back even for malformed input, with
// ERROR nodes marking the trouble spots.
func (e *sitterEngine) Parse(source []byte, l *lang.Language) (*sitter.Tree, error) {
	s, err := e.slot(l)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tree := s.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse failed for %s source", l.Name)
	}
	return tree, nil
}
