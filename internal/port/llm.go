package port

import "context"

// LLM represents a language model for text generation.
type LLM interface {
	// GenerateWithSystem runs one chat completion with a system and a user
	// message and returns the completion text. Any transport, auth, quota,
	// or malformed-response failure is reported as domain.ErrGeneration.
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model.
	ModelName() string
}
