package retriever

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"supportbot/internal/adapter/index"
	"supportbot/internal/domain"
	"supportbot/internal/port"
)

// DenseRetriever scores documents by cosine similarity between sentence
// embeddings. The index is built once from the full knowledge base; appended
// documents are embedded individually and added without a rebuild.
//
// The retriever keeps its own document snapshot aligned with index positions,
// guarded by a read-write lock, so a concurrent append never shifts the
// positions an in-flight search resolves against.
type DenseRetriever struct {
	embedder port.Embedder
	vectors  port.VectorIndex
	logger   *zap.Logger

	mu   sync.RWMutex
	docs []domain.Document
}

// NewDenseRetriever embeds every document's content and builds the index.
// Fails with domain.ErrIndexInit when the store is empty: unlike a transient
// per-query failure, there is nothing an index over zero documents could
// ever retrieve.
func NewDenseRetriever(
	ctx context.Context,
	store port.DocumentStore,
	embedder port.Embedder,
	vectors port.VectorIndex,
	logger *zap.Logger,
) (*DenseRetriever, error) {
	docs := store.AllDocuments()
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: knowledge base is empty", domain.ErrIndexInit)
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	embeddings, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: embed documents: %v", domain.ErrIndexInit, err)
	}
	for _, v := range embeddings {
		index.Normalize(v)
	}
	if err := vectors.Add(embeddings); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexInit, err)
	}

	logger.Info("vector index initialized",
		zap.Int("documents", len(docs)),
		zap.String("model", embedder.ModelName()),
		zap.Int("dimension", embedder.Dimension()))

	return &DenseRetriever{
		embedder: embedder,
		vectors:  vectors,
		logger:   logger,
		docs:     docs,
	}, nil
}

// Retrieve embeds the query and returns the topK most similar documents.
func (r *DenseRetriever) Retrieve(ctx context.Context, query string, topK int) ([]domain.ScoredDocument, error) {
	embeddings, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("%w: embed query: %v", domain.ErrRetrieval, err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("%w: embedding returned empty result", domain.ErrRetrieval)
	}

	queryVec := embeddings[0]
	index.Normalize(queryVec)

	hits, err := r.vectors.Search(queryVec, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: vector search: %v", domain.ErrRetrieval, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]domain.ScoredDocument, 0, len(hits))
	for _, hit := range hits {
		if hit.Index < 0 || hit.Index >= len(r.docs) {
			continue
		}
		results = append(results, domain.ScoredDocument{
			Document: r.docs[hit.Index],
			Score:    hit.Score,
		})
	}
	return results, nil
}

// AddDocument embeds the new document's content and extends the index.
func (r *DenseRetriever) AddDocument(ctx context.Context, doc domain.Document) error {
	embeddings, err := r.embedder.Embed(ctx, []string{doc.Content})
	if err != nil {
		return fmt.Errorf("%w: embed document: %v", domain.ErrRetrieval, err)
	}
	if len(embeddings) == 0 {
		return fmt.Errorf("%w: embedding returned empty result", domain.ErrRetrieval)
	}
	index.Normalize(embeddings[0])

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.vectors.Add(embeddings[:1]); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	r.docs = append(r.docs, doc)
	return nil
}
