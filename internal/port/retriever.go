package port

import (
	"context"

	"supportbot/internal/domain"
)

// Retriever scores knowledge base documents against a query.
type Retriever interface {
	// Retrieve returns at most topK documents sorted by descending relevance.
	// Ties preserve the store's document order. An empty result is not an
	// error; it means nothing matched.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.ScoredDocument, error)

	// AddDocument makes a newly stored document retrievable without a full
	// rebuild. Lexical retrieval reads the store directly and treats this as
	// a no-op; dense retrieval embeds the content and extends its index.
	AddDocument(ctx context.Context, doc domain.Document) error
}
