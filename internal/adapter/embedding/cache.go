package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"supportbot/internal/port"
)

var bucketEmbeddings = []byte("embeddings")

// CachedEmbedder wraps an Embedder with a BoltDB cache keyed by model and
// content hash, so rebuilding the dense index does not re-embed unchanged
// documents. Cache failures are not fatal; the inner embedder is the source
// of truth.
type CachedEmbedder struct {
	inner port.Embedder
	db    *bbolt.DB
}

// NewCachedEmbedder opens (or creates) the cache database at path.
func NewCachedEmbedder(inner port.Embedder, path string) (*CachedEmbedder, error) {
	db, err := bbolt.Open(path, 0644, nil)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEmbeddings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create embeddings bucket: %w", err)
	}

	return &CachedEmbedder{inner: inner, db: db}, nil
}

// Embed returns cached vectors where available and embeds only the misses.
func (c *CachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		for i, text := range texts {
			data := b.Get(c.key(text))
			if data == nil {
				continue
			}
			var v []float32
			if err := json.Unmarshal(data, &v); err == nil {
				vectors[i] = v
			}
		}
		return nil
	})

	for i := range texts {
		if vectors[i] == nil {
			missTexts = append(missTexts, texts[i])
			missIdx = append(missIdx, i)
		}
	}
	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := c.inner.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(missTexts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d inputs", len(fresh), len(missTexts))
	}

	c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		for i, v := range fresh {
			data, err := json.Marshal(v)
			if err != nil {
				continue
			}
			b.Put(c.key(missTexts[i]), data)
		}
		return nil
	})

	for i, v := range fresh {
		vectors[missIdx[i]] = v
	}
	return vectors, nil
}

func (c *CachedEmbedder) key(text string) []byte {
	hash := sha256.Sum256([]byte(c.inner.ModelName() + "\x00" + text))
	return hash[:]
}

// Dimension returns the inner embedder's dimension.
func (c *CachedEmbedder) Dimension() int {
	return c.inner.Dimension()
}

// ModelName returns the inner embedder's model name.
func (c *CachedEmbedder) ModelName() string {
	return c.inner.ModelName()
}

// Close closes the cache database.
func (c *CachedEmbedder) Close() error {
	return c.db.Close()
}
