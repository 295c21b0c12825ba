package retriever

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"supportbot/internal/domain"
	"supportbot/internal/port"
)

// CachedRetriever wraps a Retriever with an LRU result cache. Entries expire
// after a TTL and the whole cache is invalidated whenever a document is
// appended, so a query issued right after AddDocument always sees the new
// document.
type CachedRetriever struct {
	inner port.Retriever

	mu      sync.Mutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
}

type cacheEntry struct {
	results   []domain.ScoredDocument
	timestamp time.Time
}

// NewCachedRetriever wraps inner with a cache of maxSize entries and the
// given TTL. Non-positive arguments fall back to 100 entries and 5 minutes.
func NewCachedRetriever(inner port.Retriever, maxSize int, ttl time.Duration) *CachedRetriever {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedRetriever{
		inner:   inner,
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Retrieve serves from cache when possible and delegates otherwise.
func (c *CachedRetriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.ScoredDocument, error) {
	key := cacheKey(query, topK)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		if time.Since(entry.timestamp) <= c.ttl {
			c.moveToEnd(key)
			results := entry.results
			c.mu.Unlock()
			return results, nil
		}
		delete(c.entries, key)
		c.removeFromOrder(key)
	}
	c.mu.Unlock()

	results, err := c.inner.Retrieve(ctx, query, topK)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = &cacheEntry{results: results, timestamp: time.Now()}
	c.moveToEnd(key)
	c.mu.Unlock()

	return results, nil
}

// AddDocument delegates to the inner retriever and drops every cached entry:
// stale results must not mask the appended document.
func (c *CachedRetriever) AddDocument(ctx context.Context, doc domain.Document) error {
	if err := c.inner.AddDocument(ctx, doc); err != nil {
		return err
	}

	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.mu.Unlock()
	return nil
}

// Size returns the number of cached entries.
func (c *CachedRetriever) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(query string, topK int) string {
	data := []byte(query)
	data = append(data, byte(topK>>8), byte(topK))
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

func (c *CachedRetriever) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *CachedRetriever) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *CachedRetriever) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
