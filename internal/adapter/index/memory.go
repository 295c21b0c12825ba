package index

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"supportbot/internal/port"
)

// MemoryIndex is a flat in-memory inner-product index. Vectors are stored
// L2-normalized so inner product equals cosine similarity; search is brute
// force, which is plenty for a support knowledge base of hundreds of entries.
type MemoryIndex struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float32
}

// NewMemoryIndex creates an empty index for vectors of the given dimension.
func NewMemoryIndex(dimension int) *MemoryIndex {
	return &MemoryIndex{dimension: dimension}
}

// Add appends vectors to the index.
func (x *MemoryIndex) Add(vectors [][]float32) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, v := range vectors {
		if len(v) != x.dimension {
			return fmt.Errorf("vector dimension mismatch: expected %d, got %d", x.dimension, len(v))
		}
	}
	x.vectors = append(x.vectors, vectors...)
	return nil
}

// Search returns the k vectors with the highest inner product against the
// query, sorted descending; ties preserve append order.
func (x *MemoryIndex) Search(query []float32, k int) ([]port.VectorHit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	if len(query) != x.dimension {
		return nil, fmt.Errorf("query dimension mismatch: expected %d, got %d", x.dimension, len(query))
	}
	if len(x.vectors) == 0 || k <= 0 {
		return nil, nil
	}

	hits := make([]port.VectorHit, len(x.vectors))
	for i, v := range x.vectors {
		hits[i] = port.VectorHit{Index: i, Score: dotProduct(query, v)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Count returns the number of indexed vectors.
func (x *MemoryIndex) Count() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.vectors)
}

func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// Normalize scales v to unit length in place. Zero vectors are left as-is.
func Normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
}
