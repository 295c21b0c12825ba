package usecase

import (
	"sync"
	"time"

	"supportbot/internal/domain"
)

// An interaction counts as resolved when confidence clears this threshold
// and at least one source grounded the answer.
const resolvedConfidenceThreshold = 0.7

// MetricsTracker accumulates per-session interaction records. It is passed
// explicitly into the orchestrator rather than living as process state, so
// the pipeline can be tested without any session framework.
type MetricsTracker struct {
	mu           sync.Mutex
	interactions []domain.Interaction
	startTime    time.Time
}

// Summary is a snapshot of the session's aggregate metrics.
type Summary struct {
	TotalQueries    int           `json:"total_queries"`
	ResolvedQueries int           `json:"resolved_queries"`
	ResolutionRate  float64       `json:"resolution_rate"`
	AvgResponseTime time.Duration `json:"avg_response_time"`
	AvgConfidence   float64       `json:"avg_confidence"`
	SessionDuration time.Duration `json:"session_duration"`
}

// NewMetricsTracker creates an empty tracker.
func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{startTime: time.Now()}
}

// AddInteraction appends one completed query. Records are never mutated or
// removed within a session.
func (t *MetricsTracker) AddInteraction(query, response string, responseTime time.Duration, confidence float64, sourcesCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.interactions = append(t.interactions, domain.Interaction{
		Timestamp:    time.Now(),
		Query:        query,
		Response:     response,
		ResponseTime: responseTime,
		Confidence:   confidence,
		SourcesCount: sourcesCount,
		Resolved:     confidence > resolvedConfidenceThreshold && sourcesCount > 0,
	})
}

// Summary computes the aggregate metrics over all recorded interactions.
func (t *MetricsTracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{SessionDuration: time.Since(t.startTime)}
	if len(t.interactions) == 0 {
		return s
	}

	var totalTime time.Duration
	var totalConfidence float64
	for _, i := range t.interactions {
		if i.Resolved {
			s.ResolvedQueries++
		}
		totalTime += i.ResponseTime
		totalConfidence += i.Confidence
	}

	s.TotalQueries = len(t.interactions)
	s.ResolutionRate = float64(s.ResolvedQueries) / float64(s.TotalQueries)
	s.AvgResponseTime = totalTime / time.Duration(s.TotalQueries)
	s.AvgConfidence = totalConfidence / float64(s.TotalQueries)
	return s
}

// Recent returns up to limit interactions, most recent first.
func (t *MetricsTracker) Recent(limit int) []domain.Interaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.interactions)
	if limit > n {
		limit = n
	}

	recent := make([]domain.Interaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, t.interactions[i])
	}
	return recent
}

// Export returns a copy of every interaction in record order.
func (t *MetricsTracker) Export() []domain.Interaction {
	t.mu.Lock()
	defer t.mu.Unlock()

	interactions := make([]domain.Interaction, len(t.interactions))
	copy(interactions, t.interactions)
	return interactions
}
