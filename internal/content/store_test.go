package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader map[string]Result

func (s staticLoader) Load(_ context.Context, resource string) Result {
	if r, ok := s[resource]; ok {
		return r
	}
	return Result{Resource: resource, Articles: []Article{}, Source: SourceEmpty, Err: errors.New("missing")}
}

func TestOpenLoadsEachResource(t *testing.T) {
	loader := staticLoader{
		ResourceBlogs:    {Resource: ResourceBlogs, Articles: []Article{{ID: "a"}}, Source: SourceRemote},
		ResourceProjects: {Resource: ResourceProjects, Articles: []Article{{ID: "p"}, {ID: "q"}}, Source: SourceFallback},
	}

	store, err := Open(context.Background(), loader, ResourceBlogs, ResourceProjects)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len(ResourceBlogs))
	assert.Equal(t, 2, store.Len(ResourceProjects))
	assert.Equal(t, SourceFallback, store.Source(ResourceProjects))
	assert.False(t, store.Unavailable(ResourceBlogs))
}

func TestOpenCancelledDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, err := Open(ctx, staticLoader{}, ResourceBlogs)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreUnknownResourceIsEmpty(t *testing.T) {
	store := NewStore(map[string][]Article{ResourceBlogs: nil})

	assert.NotNil(t, store.All(ResourceBlogs))
	assert.Empty(t, store.All("talks"))
	assert.True(t, store.Unavailable("talks"))
	assert.NoError(t, store.Err("talks"))
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	assert.Empty(t, store.All(ResourceBlogs))
	assert.Equal(t, SourceEmpty, store.Source(ResourceBlogs))
	assert.NoError(t, store.Err(ResourceBlogs))
}
