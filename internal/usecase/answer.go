package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"supportbot/internal/adapter/retriever"
	"supportbot/internal/domain"
	"supportbot/internal/port"
)

// FallbackAnswer is returned verbatim whenever generation fails. Together
// with confidence 0 and no sources it is the canonical signal of a degraded
// response.
const FallbackAnswer = "I apologize, but I'm experiencing technical difficulties. Please try again later or contact our human support team."

// Pipeline stage names, used for structured logging.
const (
	stageRetrieving = "retrieving"
	stageComposing  = "composing"
	stageGenerating = "generating"
	stageScoring    = "scoring"
)

// AnswerUseCase runs the full retrieval-augmented answer pipeline:
// retrieve, compose, generate, score. Its Answer method is total: every
// stage failure is absorbed into a degraded result, never raised.
type AnswerUseCase struct {
	store     port.DocumentStore
	retriever port.Retriever
	llm       port.LLM
	topK      int
	metrics   *MetricsTracker
	logger    *zap.Logger
}

// NewAnswerUseCase wires the pipeline. metrics may be nil when no session
// tracking is wanted; topK values below 1 fall back to 3.
func NewAnswerUseCase(
	store port.DocumentStore,
	ret port.Retriever,
	llm port.LLM,
	topK int,
	metrics *MetricsTracker,
	logger *zap.Logger,
) *AnswerUseCase {
	if topK < 1 {
		topK = 3
	}
	return &AnswerUseCase{
		store:     store,
		retriever: ret,
		llm:       llm,
		topK:      topK,
		metrics:   metrics,
		logger:    logger,
	}
}

// Answer runs the pipeline for one query and always returns a response.
//
// A retrieval failure degrades to an empty retrieval result and the pipeline
// continues: the generator is invoked even with an empty context block, and
// the model reports insufficient grounding in its own words while the
// confidence of 0 lets callers flag the answer independently. Only a
// generation failure short-circuits to the fixed fallback response.
func (u *AnswerUseCase) Answer(ctx context.Context, query string) domain.Response {
	start := time.Now()

	resp, err := u.answerOnce(ctx, query)
	if err != nil {
		resp = domain.Response{
			Answer:     FallbackAnswer,
			Confidence: 0.0,
			Sources:    []domain.Source{},
		}
	}

	u.record(query, resp, time.Since(start))
	return resp
}

func (u *AnswerUseCase) answerOnce(ctx context.Context, query string) (domain.Response, error) {
	docs, err := u.retriever.Retrieve(ctx, query, u.topK)
	if err != nil {
		u.logger.Warn("retrieval failed, continuing without context",
			zap.String("stage", stageRetrieving),
			zap.Error(err))
		docs = nil
	}

	u.logger.Debug("context retrieved",
		zap.String("stage", stageComposing),
		zap.Int("documents", len(docs)))
	prompt := ComposePrompt(query, docs)

	answer, err := u.llm.GenerateWithSystem(ctx, prompt.System, prompt.User)
	if err != nil {
		u.logger.Error("generation failed, returning fallback response",
			zap.String("stage", stageGenerating),
			zap.Error(err))
		return domain.Response{}, err
	}

	confidence := retriever.Confidence(docs)
	u.logger.Debug("response scored",
		zap.String("stage", stageScoring),
		zap.Float64("confidence", confidence))

	sources := make([]domain.Source, len(docs))
	for i, sd := range docs {
		sources[i] = domain.Source{
			Title:    sd.Document.Title,
			Score:    sd.Score,
			Category: sd.Document.Category,
		}
	}

	return domain.Response{
		Answer:     answer,
		Confidence: confidence,
		Sources:    sources,
	}, nil
}

func (u *AnswerUseCase) record(query string, resp domain.Response, elapsed time.Duration) {
	if u.metrics == nil {
		return
	}
	u.metrics.AddInteraction(query, resp.Answer, elapsed, resp.Confidence, len(resp.Sources))
}

// AddDocument appends a document to the knowledge base and makes it
// immediately retrievable.
func (u *AnswerUseCase) AddDocument(ctx context.Context, title, content, category string) error {
	doc, err := u.store.AddDocument(title, content, category)
	if err != nil {
		return err
	}
	return u.retriever.AddDocument(ctx, doc)
}
