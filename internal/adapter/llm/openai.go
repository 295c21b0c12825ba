package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"supportbot/internal/domain"
)

// OpenAIClient generates completions through an OpenAI-compatible chat API.
// Every failure mode of the call, transport errors, auth and rate-limit
// rejections, timeouts, and empty responses, is collapsed into
// domain.ErrGeneration so callers never see a provider-specific error type.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	logger      *zap.Logger
}

// Config holds the generation settings. Model, Temperature, and MaxTokens
// are the recognized sampling options.
type Config struct {
	APIKeyEnv   string // environment variable holding the API key
	BaseURL     string // empty means the OpenAI default
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// NewOpenAIClient creates a chat client. A missing API key is a
// configuration error surfaced here rather than on first call.
func NewOpenAIClient(cfg Config, logger *zap.Logger) (*OpenAIClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable %s", cfg.APIKeyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

// GenerateWithSystem runs one synchronous chat completion.
func (c *OpenAIClient) GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		c.logger.Warn("chat completion failed",
			zap.String("model", c.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", generationError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrGeneration)
	}
	return resp.Choices[0].Message.Content, nil
}

// ModelName returns the name of the model.
func (c *OpenAIClient) ModelName() string {
	return c.model
}

// generationError wraps an API failure with domain.ErrGeneration, keeping
// the provider detail in the message only.
func generationError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: API error %d: %s", domain.ErrGeneration, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%w: API error %d: %s", domain.ErrGeneration, reqErr.HTTPStatusCode, string(reqErr.Body))
	}
	return fmt.Errorf("%w: %v", domain.ErrGeneration, err)
}
