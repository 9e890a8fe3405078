package content

import (
	"context"
	"fmt"
)

// Resource names used by the site.
const (
	ResourceBlogs    = "blogs"
	ResourceProjects = "projects"
)

// Store holds the articles of each resource, loaded once and never mutated.
// Concurrent reads need no locking.
type Store struct {
	results map[string]Result
}

// ResourceLoader loads one resource. *Loader implements it.
type ResourceLoader interface {
	Load(ctx context.Context, resource string) Result
}

// Open loads every resource and returns the populated Store. If ctx is done
// by the time loading finishes the results are discarded and ctx.Err() is
// returned, so a caller that has gone away never sees a partial store. Load
// deadlines belong on the Loader (WithRemoteBudget), not on ctx.
func Open(ctx context.Context, loader ResourceLoader, resources ...string) (*Store, error) {
	s := &Store{results: make(map[string]Result, len(resources))}
	for _, resource := range resources {
		s.results[resource] = loader.Load(ctx, resource)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("content load abandoned: %w", err)
	}
	return s, nil
}

// NewStore builds a Store from already-loaded articles. Tests and tools use it.
func NewStore(articles map[string][]Article) *Store {
	s := &Store{results: make(map[string]Result, len(articles))}
	for resource, list := range articles {
		if list == nil {
			list = []Article{}
		}
		s.results[resource] = Result{Resource: resource, Articles: list, Source: SourceRemote}
	}
	return s
}

// All returns the articles of resource in load order. The slice is shared;
// callers must not modify it. Unknown resources yield an empty slice.
func (s *Store) All(resource string) []Article {
	if s == nil {
		return []Article{}
	}
	r, ok := s.results[resource]
	if !ok || r.Articles == nil {
		return []Article{}
	}
	return r.Articles
}

// Len returns the number of articles loaded for resource.
func (s *Store) Len(resource string) int {
	return len(s.All(resource))
}

// Source reports where resource was loaded from.
func (s *Store) Source(resource string) Source {
	if s == nil {
		return SourceEmpty
	}
	r, ok := s.results[resource]
	if !ok {
		return SourceEmpty
	}
	return r.Source
}

// Err returns the load error recorded for resource, if any.
func (s *Store) Err(resource string) error {
	if s == nil {
		return nil
	}
	return s.results[resource].Err
}

// Unavailable reports whether both the API and the fallback failed for resource.
func (s *Store) Unavailable(resource string) bool {
	return s.Source(resource) == SourceEmpty
}
