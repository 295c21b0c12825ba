package retriever

import (
	"context"
	"sort"
	"strings"

	"supportbot/internal/adapter/analyzer"
	"supportbot/internal/domain"
	"supportbot/internal/port"
)

// Field weights for lexical scoring. Title matches dominate, category
// matches rank above content matches.
const (
	titleWeight    = 3.0
	contentWeight  = 1.0
	categoryWeight = 2.0
)

// LexicalRetriever scores documents by word overlap with the query, with a
// substring bonus so partial-word matches inside longer tokens still count.
// It reads the store on every call, so appended documents are retrievable
// immediately without an index update.
type LexicalRetriever struct {
	store port.DocumentStore
}

// NewLexicalRetriever creates a lexical retriever over the store.
func NewLexicalRetriever(store port.DocumentStore) *LexicalRetriever {
	return &LexicalRetriever{store: store}
}

// Retrieve returns at most topK documents sorted by descending normalized
// overlap score. An empty query yields an empty result: with no query words
// there is nothing to ground an answer on.
func (r *LexicalRetriever) Retrieve(_ context.Context, query string, topK int) ([]domain.ScoredDocument, error) {
	queryWords := analyzer.WordSet(query)
	if len(queryWords) == 0 {
		return nil, nil
	}

	var scored []domain.ScoredDocument
	for _, doc := range r.store.AllDocuments() {
		score := scoreDocument(queryWords, doc)
		if score <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredDocument{Document: doc, Score: score})
	}

	// Stable sort keeps store order on ties, which makes retrieval
	// deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK >= 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// AddDocument is a no-op: lexical retrieval scores the live store directly.
func (r *LexicalRetriever) AddDocument(context.Context, domain.Document) error {
	return nil
}

// scoreDocument computes the weighted word-overlap score of one document,
// normalized by the number of query words.
func scoreDocument(queryWords map[string]struct{}, doc domain.Document) float64 {
	titleLower := strings.ToLower(doc.Title)
	contentLower := strings.ToLower(doc.Content)

	titleWords := analyzer.WordSet(titleLower)
	contentWords := analyzer.WordSet(contentLower)
	categoryWords := analyzer.WordSet(doc.Category)

	score := titleWeight*float64(analyzer.Overlap(queryWords, titleWords)) +
		contentWeight*float64(analyzer.Overlap(queryWords, contentWords)) +
		categoryWeight*float64(analyzer.Overlap(queryWords, categoryWords))

	// Substring bonus: unlike the set overlap above, this also catches query
	// words embedded in longer tokens.
	for word := range queryWords {
		if strings.Contains(contentLower, word) {
			score++
		}
		if strings.Contains(titleLower, word) {
			score += 2
		}
	}

	return score / float64(max(len(queryWords), 1))
}
