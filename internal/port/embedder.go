package port

import "context"

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed generates embeddings for the given texts.
	// Returns a slice of vectors, one per input text.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}

// VectorIndex stores document vectors and searches them by inner product.
// Vectors are identified by their append position, matching the positional
// identity of documents in the store.
type VectorIndex interface {
	// Add appends vectors to the index. Vectors must already be
	// L2-normalized so inner product equals cosine similarity.
	Add(vectors [][]float32) error

	// Search returns the k entries most similar to the query vector,
	// sorted by descending score; ties preserve append order.
	Search(query []float32, k int) ([]VectorHit, error)

	// Count returns the number of indexed vectors.
	Count() int
}

// VectorHit is one vector search result.
type VectorHit struct {
	Index int     // append position of the matched vector
	Score float64 // inner-product similarity
}
