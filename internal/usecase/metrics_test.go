package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsTracker_ResolvedRule(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		sources    int
		resolved   bool
	}{
		{"high confidence with sources", 0.9, 2, true},
		{"threshold is exclusive", 0.7, 2, false},
		{"high confidence without sources", 0.9, 0, false},
		{"low confidence with sources", 0.3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewMetricsTracker()
			tracker.AddInteraction("q", "r", time.Second, tt.confidence, tt.sources)

			interactions := tracker.Export()
			require.Len(t, interactions, 1)
			assert.Equal(t, tt.resolved, interactions[0].Resolved)
		})
	}
}

func TestMetricsTracker_Summary(t *testing.T) {
	tracker := NewMetricsTracker()
	tracker.AddInteraction("a", "r", 2*time.Second, 0.8, 1)
	tracker.AddInteraction("b", "r", 4*time.Second, 0.4, 1)

	s := tracker.Summary()
	assert.Equal(t, 2, s.TotalQueries)
	assert.Equal(t, 1, s.ResolvedQueries)
	assert.InDelta(t, 0.5, s.ResolutionRate, 1e-9)
	assert.Equal(t, 3*time.Second, s.AvgResponseTime)
	assert.InDelta(t, 0.6, s.AvgConfidence, 1e-9)
}

func TestMetricsTracker_EmptySummary(t *testing.T) {
	s := NewMetricsTracker().Summary()

	assert.Zero(t, s.TotalQueries)
	assert.Zero(t, s.ResolutionRate)
	assert.Zero(t, s.AvgConfidence)
}

func TestMetricsTracker_RecentIsMostRecentFirst(t *testing.T) {
	tracker := NewMetricsTracker()
	tracker.AddInteraction("first", "r", time.Second, 0.5, 1)
	tracker.AddInteraction("second", "r", time.Second, 0.5, 1)
	tracker.AddInteraction("third", "r", time.Second, 0.5, 1)

	recent := tracker.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Query)
	assert.Equal(t, "second", recent[1].Query)
}

func TestMetricsTracker_ExportReturnsCopy(t *testing.T) {
	tracker := NewMetricsTracker()
	tracker.AddInteraction("q", "r", time.Second, 0.5, 1)

	export := tracker.Export()
	export[0].Query = "mutated"

	assert.Equal(t, "q", tracker.Export()[0].Query)
}
