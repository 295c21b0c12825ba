package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"supportbot/internal/adapter/embedding"
	"supportbot/internal/adapter/index"
	"supportbot/internal/adapter/kb"
	"supportbot/internal/adapter/llm"
	"supportbot/internal/adapter/retriever"
	"supportbot/internal/port"
	"supportbot/internal/usecase"
)

// openStore opens the knowledge base at the configured path, resolved
// against the root directory when relative.
func openStore() *kb.Store {
	path := cfg.KnowledgeBase.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}
	return kb.Open(path, log)
}

// buildPipeline wires the full answer pipeline from configuration. The
// returned cleanup closes any resources the pipeline opened.
func buildPipeline(ctx context.Context, metrics *usecase.MetricsTracker) (*usecase.AnswerUseCase, *kb.Store, func(), error) {
	store := openStore()
	cleanup := func() {}

	var ret port.Retriever
	switch cfg.Retrieval.Strategy {
	case "", "lexical":
		ret = retriever.NewLexicalRetriever(store)

	case "dense":
		embedder, err := embedding.NewOpenAIEmbedder(embedding.Config{
			APIKeyEnv: cfg.Embedding.APIKeyEnv,
			BaseURL:   cfg.Embedding.BaseURL,
			Model:     cfg.Embedding.Model,
			Dimension: cfg.Embedding.Dimension,
			BatchSize: cfg.Embedding.BatchSize,
		}, log)
		if err != nil {
			return nil, nil, nil, err
		}

		var emb port.Embedder = embedder
		if cfg.Embedding.CachePath != "" {
			cachePath := cfg.Embedding.CachePath
			if !filepath.IsAbs(cachePath) {
				cachePath = filepath.Join(rootDir, cachePath)
			}
			cached, err := embedding.NewCachedEmbedder(embedder, cachePath)
			if err != nil {
				return nil, nil, nil, err
			}
			emb = cached
			cleanup = func() { _ = cached.Close() }
		}

		dense, err := retriever.NewDenseRetriever(ctx, store, emb, index.NewMemoryIndex(emb.Dimension()), log)
		if err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		ret = dense

	default:
		return nil, nil, nil, fmt.Errorf("unknown retrieval strategy: %q", cfg.Retrieval.Strategy)
	}

	if cfg.Retrieval.CacheEnabled {
		ret = retriever.NewCachedRetriever(ret,
			cfg.Retrieval.CacheSize,
			time.Duration(cfg.Retrieval.CacheTTLSeconds)*time.Second)
	}

	chat, err := llm.NewOpenAIClient(llm.Config{
		APIKeyEnv:   cfg.LLM.APIKeyEnv,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	}, log)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	uc := usecase.NewAnswerUseCase(store, ret, chat, cfg.Retrieval.TopK, metrics, log)
	return uc, store, cleanup, nil
}
