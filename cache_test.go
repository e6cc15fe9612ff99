package inkpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func countingBackend(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]Post{{ID: "1", Title: "Cached post", Author: "A"}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPostCacheServesSnapshotWithinTTL(t *testing.T) {
	var hits atomic.Int32
	srv := countingBackend(t, &hits)
	cache := NewPostCache(NewClient(srv.URL, srv.Client()), time.Minute)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		posts, err := cache.Posts(ctx)
		if err != nil {
			t.Fatalf("Posts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("got %d posts, want 1", len(posts))
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("backend hit %d times, want 1 (snapshot reuse)", got)
	}
}

func TestPostCacheInvalidateForcesRefetch(t *testing.T) {
	var hits atomic.Int32
	srv := countingBackend(t, &hits)
	cache := NewPostCache(NewClient(srv.URL, srv.Client()), time.Minute)

	ctx := context.Background()
	if _, err := cache.Posts(ctx); err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Posts(ctx); err != nil {
		t.Fatalf("Posts after invalidate failed: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("backend hit %d times, want 2 (invalidate refetches)", got)
	}
}

func TestPostCacheGetFromSnapshot(t *testing.T) {
	var hits atomic.Int32
	srv := countingBackend(t, &hits)
	cache := NewPostCache(NewClient(srv.URL, srv.Client()), time.Minute)

	post, err := cache.Get(context.Background(), "1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if post.Title != "Cached post" {
		t.Errorf("Title = %q, want %q", post.Title, "Cached post")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("backend hit %d times, want 1", got)
	}
}

func TestPostCacheFailedFetchReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	cache := NewPostCache(NewClient(srv.URL, nil), time.Minute)

	if _, err := cache.Posts(context.Background()); !IsTransport(err) {
		t.Errorf("expected TransportError, got %v", err)
	}
}
