package kb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"supportbot/internal/domain"
)

// Store is a knowledge base backed by a flat JSON file of the form
// {"documents": [{"title", "content", "category"}, ...]}. The whole file is
// read into memory at open time; AddDocument rewrites it.
//
// Reads and the single append path are serialized with a read-write lock so
// the store is safe under concurrent queries.
type Store struct {
	path   string
	logger *zap.Logger

	mu   sync.RWMutex
	docs []domain.Document
}

type fileFormat struct {
	Documents   []domain.Document `json:"documents"`
	LastUpdated string            `json:"last_updated,omitempty"`
}

// Open loads the knowledge base from path. A missing file is not fatal
// (empty collection, logged as a warning) and neither is malformed JSON
// (empty collection, logged as an error): every query against an empty
// collection simply retrieves nothing.
func Open(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, logger: logger}

	if err := s.load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("knowledge base file not found, starting empty",
				zap.String("path", path))
		} else {
			logger.Error("knowledge base load failed, starting empty",
				zap.String("path", path),
				zap.Error(fmt.Errorf("%w: %v", domain.ErrStoreLoad, err)))
		}
		s.docs = nil
		return s
	}

	logger.Info("knowledge base loaded",
		zap.String("path", path),
		zap.Int("documents", len(s.docs)))
	return s
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	for i := range file.Documents {
		if file.Documents[i].Category == "" {
			file.Documents[i].Category = domain.DefaultCategory
		}
	}
	s.docs = file.Documents
	return nil
}

// AllDocuments returns a copy of every document in load order.
func (s *Store) AllDocuments() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, len(s.docs))
	copy(docs, s.docs)
	return docs
}

// SearchDocuments returns documents whose title or content contains the
// keyword, case-insensitive.
func (s *Store) SearchDocuments(keyword string) []domain.Document {
	keyword = strings.ToLower(keyword)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Document
	for _, doc := range s.docs {
		if strings.Contains(strings.ToLower(doc.Title), keyword) ||
			strings.Contains(strings.ToLower(doc.Content), keyword) {
			results = append(results, doc)
		}
	}
	return results
}

// DocumentsByCategory returns documents with the exact category.
func (s *Store) DocumentsByCategory(category string) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Document
	for _, doc := range s.docs {
		if doc.Category == category {
			results = append(results, doc)
		}
	}
	return results
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

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

// Count returns the number of documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// AddDocument appends a document and persists the collection to disk.
func (s *Store) AddDocument(title, content, category string) (domain.Document, error) {
	if category == "" {
		category = domain.DefaultCategory
	}
	doc := domain.Document{Title: title, Content: content, Category: category}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = append(s.docs, doc)
	if err := s.save(); err != nil {
		s.docs = s.docs[:len(s.docs)-1]
		return domain.Document{}, fmt.Errorf("save knowledge base: %w", err)
	}

	s.logger.Info("document added to knowledge base",
		zap.String("title", title),
		zap.String("category", category))
	return doc, nil
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file := fileFormat{
		Documents:   s.docs,
		LastUpdated: time.Now().Format("2006-01-02"),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
