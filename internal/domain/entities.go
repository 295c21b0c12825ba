package domain

import "time"

// DefaultCategory is assigned to documents loaded or added without a category.
const DefaultCategory = "General"

// Document is a single knowledge base entry. Documents carry no persisted ID;
// identity is their position in the store's in-memory sequence.
type Document struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// ScoredDocument pairs a document with a retrieval relevance score.
// The score scale is strategy-defined: non-negative for lexical overlap,
// [-1,1] cosine similarity for dense retrieval.
type ScoredDocument struct {
	Document Document
	Score    float64
}

// Source describes one retrieved document in a response, in retrieval order.
type Source struct {
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
	Category string  `json:"category"`
}

// Response is the result of answering a single query.
type Response struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []Source `json:"sources"`
}

// Prompt is a composed chat prompt ready for a completion call.
type Prompt struct {
	System string
	User   string
}

// Interaction records one completed query for session metrics.
// Appended once per query, never mutated afterwards.
type Interaction struct {
	Timestamp    time.Time     `json:"timestamp"`
	Query        string        `json:"query"`
	Response     string        `json:"response"`
	ResponseTime time.Duration `json:"response_time"`
	Confidence   float64       `json:"confidence"`
	SourcesCount int           `json:"sources_count"`
	Resolved     bool          `json:"resolved"`
}
