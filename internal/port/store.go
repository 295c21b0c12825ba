package port

import "supportbot/internal/domain"

// DocumentStore holds the knowledge base documents. Reads return copies of
// the stored documents; callers never observe later mutations through them.
type DocumentStore interface {
	// AllDocuments returns every document in load order.
	AllDocuments() []domain.Document

	// SearchDocuments returns documents whose title or content contains the
	// keyword, case-insensitive.
	SearchDocuments(keyword string) []domain.Document

	// DocumentsByCategory returns documents with the exact category.
	DocumentsByCategory(category string) []domain.Document

	// Categories returns the distinct categories, sorted.
	Categories() []string

	// Count returns the number of documents.
	Count() int

	// AddDocument appends a document and persists the collection. An empty
	// category defaults to domain.DefaultCategory. Returns the stored
	// document.
	AddDocument(title, content, category string) (domain.Document, error)
}
