package usecase

import (
	"context"
	"sort"
	"strings"

	"supportbot/internal/domain"
)

// memStore is an in-memory DocumentStore for tests.
type memStore struct {
	docs []domain.Document
}

func newMemStore(docs ...domain.Document) *memStore {
	return &memStore{docs: docs}
}

func (s *memStore) AllDocuments() []domain.Document {
	docs := make([]domain.Document, len(s.docs))
	copy(docs, s.docs)
	return docs
}

func (s *memStore) SearchDocuments(keyword string) []domain.Document {
	keyword = strings.ToLower(keyword)
	var results []domain.Document
	for _, doc := range s.docs {
		if strings.Contains(strings.ToLower(doc.Title), keyword) ||
			strings.Contains(strings.ToLower(doc.Content), keyword) {
			results = append(results, doc)
		}
	}
	return results
}

func (s *memStore) DocumentsByCategory(category string) []domain.Document {
	var results []domain.Document
	for _, doc := range s.docs {
		if doc.Category == category {
			results = append(results, doc)
		}
	}
	return results
}

func (s *memStore) Categories() []string {
	seen := make(map[string]struct{})
	for _, doc := range s.docs {
		seen[doc.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

func (s *memStore) Count() int {
	return len(s.docs)
}

func (s *memStore) AddDocument(title, content, category string) (domain.Document, error) {
	if category == "" {
		category = domain.DefaultCategory
	}
	doc := domain.Document{Title: title, Content: content, Category: category}
	s.docs = append(s.docs, doc)
	return doc, nil
}

// failingRetriever always reports a retrieval failure.
type failingRetriever struct {
	err error
}

func (r *failingRetriever) Retrieve(context.Context, string, int) ([]domain.ScoredDocument, error) {
	return nil, r.err
}

func (r *failingRetriever) AddDocument(context.Context, domain.Document) error {
	return r.err
}
