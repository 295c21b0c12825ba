package domain

import "errors"

// Error taxonomy for the answer pipeline. Every failure below the orchestrator
// is wrapped with one of these sentinels so callers can classify it with
// errors.Is without depending on adapter-specific error types.
var (
	// ErrStoreLoad marks a knowledge base file that is missing or corrupt.
	// Recovered at the store: degrades to an empty collection.
	ErrStoreLoad = errors.New("knowledge base load failed")

	// ErrRetrieval marks a scoring or index failure during retrieval.
	// Recovered at the orchestrator: degrades to an empty retrieval result.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration marks any completion endpoint failure: transport, auth,
	// rate limit, timeout, or a malformed response. Recovered at the
	// orchestrator: degrades to the fixed fallback response.
	ErrGeneration = errors.New("generation failed")

	// ErrIndexInit marks a dense index built over an empty knowledge base.
	// Fatal: no meaningful retrieval is possible without documents.
	ErrIndexInit = errors.New("vector index initialization failed")
)
