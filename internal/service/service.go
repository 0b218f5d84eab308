package service

import (
	"log"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/RedSiamese/sitter-tree-mcp/internal/projection"
	"github.com/RedSiamese/sitter-tree-mcp/internal/treecache"
)

// Progress receives per-file notifications during a batch. Implementations
// must tolerate concurrent Step calls; a nil Progress is silently skipped.
type Progress interface {
	Start(total int)
	Step(path string)
	Done()
}

// Service implements the two batch operations: project_paths and
// search_paths. Files in a batch are processed concurrently; the cache is
// the only shared mutable state between workers.
type Service struct {
	resolver *Resolver
	cache    *treecache.Cache
	workers  int

	// Progress, when set, observes directory batches. The CLI attaches a
	// progress bar here; the MCP server leaves it nil.
	Progress Progress
}

// New creates a service. workers <= 0 selects runtime.NumCPU, capped so a
// huge machine does not stampede the file system.
func New(resolver *Resolver, cache *treecache.Cache, workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 16 {
		workers = 16
	}
	return &Service{resolver: resolver, cache: cache, workers: workers}
}

// ProjectPaths renders the full or overview projection of every supported
// file under path. The result maps file path to rendered text; per-file
// failures become error markers, never missing entries.
func (s *Service) ProjectPaths(path, mode string) (map[string]string, error) {
	m, err := projection.ParseMode(mode)
	if err != nil {
		return nil, &FileError{Path: path, Code: CodeInvalidArgument, Err: err}
	}

	targets, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	id := shortID()
	log.Printf("[%s] projecting %d file(s) under %s (mode=%s)", id, len(targets), path, m)
	results := s.run(targets, func(t Target) (string, error) {
		tree, source, err := s.cache.GetOrParse(t.Path, t.Language)
		if err != nil {
			return "", err
		}
		root, err := projection.Project(tree.RootNode(), source, t.Language.Table, m)
		if err != nil {
			return "", err
		}
		h := projection.Header{File: t.Path, Language: t.Language.Name, Mode: m}
		return projection.Render(h, root), nil
	})
	log.Printf("[%s] projected %d file(s)", id, len(results))
	return results, nil
}

// SearchPaths renders the keyword projection of every supported file
// under path. Files with no match stay in the map as a childless header
// element so "searched, no hits" is distinguishable from "not searched".
func (s *Service) SearchPaths(path string, keywords []string) (map[string]string, error) {
	if err := projection.ValidateKeywords(keywords); err != nil {
		return nil, &FileError{Path: path, Code: CodeInvalidArgument, Err: err}
	}

	targets, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	id := shortID()
	log.Printf("[%s] searching %d file(s) under %s for %d keyword(s)", id, len(targets), path, len(keywords))
	results := s.run(targets, func(t Target) (string, error) {
		tree, source, err := s.cache.GetOrParse(t.Path, t.Language)
		if err != nil {
			return "", err
		}
		root, err := projection.Search(tree.RootNode(), source, t.Language.Table, keywords)
		if err != nil {
			return "", err
		}
		return projection.Render(projection.SearchHeader(t.Path, t.Language.Name, keywords), root), nil
	})
	log.Printf("[%s] searched %d file(s)", id, len(results))
	return results, nil
}

// run fans the targets out over a bounded worker pool and assembles the
// result map. Map assembly does not depend on completion order, so output
// is deterministic for a given input set.
func (s *Service) run(targets []Target, project func(Target) (string, error)) map[string]string {
	progress := s.Progress
	if progress != nil {
		progress.Start(len(targets))
		defer progress.Done()
	}

	rendered := make([]string, len(targets))
	jobs := make(chan int)

	workers := s.workers
	if workers > len(targets) {
		workers = len(targets)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rendered[i] = s.projectOne(targets[i], project)
				if progress != nil {
					progress.Step(targets[i].Path)
				}
			}
		}()
	}
	for i := range targets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	results := make(map[string]string, len(targets))
	for i, t := range targets {
		results[t.Path] = rendered[i]
	}
	return results
}

func (s *Service) projectOne(t Target, project func(Target) (string, error)) string {
	err := t.Err
	if err == nil {
		var text string
		if text, err = project(t); err == nil {
			return text
		}
	}
	log.Printf("projection failed for %s: %v", t.Path, err)
	return projection.RenderError(t.Path, string(codeFor(err)), err.Error())
}

// shortID is a compact request id correlating the begin/end log lines of
// one batch.
func shortID() string {
	return uuid.NewString()[:8]
}
