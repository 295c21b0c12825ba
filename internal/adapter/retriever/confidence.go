package retriever

import "supportbot/internal/domain"

// Position weights for confidence estimation: the top match counts most.
// Positions beyond the third use extraWeight.
var positionWeights = [3]float64{1.0, 0.7, 0.5}

const extraWeight = 0.3

// Confidence converts a ranked retrieval result into a single scalar in
// [0,1] via a position-weighted average of the document scores. Each score
// is clamped to 1.0 before weighting so an outsized lexical score cannot
// push confidence past 1. An empty result yields 0.
//
// This is a heuristic proxy for answer trustworthiness, not a calibrated
// probability: higher retrieval relevance reports higher confidence, and
// nothing more.
func Confidence(docs []domain.ScoredDocument) float64 {
	if len(docs) == 0 {
		return 0.0
	}

	var weightedScore, totalWeight float64
	for i, doc := range docs {
		weight := extraWeight
		if i < len(positionWeights) {
			weight = positionWeights[i]
		}
		weightedScore += min(doc.Score, 1.0) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0
	}
	return clamp01(weightedScore / totalWeight)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
