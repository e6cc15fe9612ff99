package inkpress

import (
	"context"
	"sync"
	"time"
)

// PostCache is an in-memory snapshot of the backend collection with TTL.
// Handlers read from it so a page render costs one backend round trip at
// most; every successful mutation calls Invalidate so aggregates stay
// consistent with the collection.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	client  *Client
}

// NewPostCache creates a PostCache backed by the given repository client.
func NewPostCache(c *Client, ttl time.Duration) *PostCache {
	return &PostCache{client: c, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the snapshot so the next read refetches the collection.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// Posts returns the cached collection, refetching when stale. A failed
// refetch leaves the previous snapshot untouched and returns the error.
func (c *PostCache) Posts(ctx context.Context) ([]Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.client.List(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return c.posts, nil
}

// Get returns a single post from the snapshot, falling back to a direct
// fetch when the id is not in the cached collection.
func (c *PostCache) Get(ctx context.Context, id string) (Post, error) {
	posts, err := c.Posts(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return c.client.Get(ctx, id)
}
