package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

const (
	defaultEvaluationsTTL      = 24 * time.Hour
	defaultSimilarityThreshold = 0.95
)

// cachedEvaluation is one hash field of an answer cache entry.
type cachedEvaluation struct {
	Evaluation string    `json:"evaluation"`
	Embedding  []float32 `json:"embedding"`
	Answer     string    `json:"answer,omitempty"`
}

// AnswerCache reuses evaluator output for answers close to one already
// evaluated for the same question. Entries for a question live in one hash
// keyed by question, subtopic and job role; fields are normalized answers.
// Failures are logged and treated as misses.
type AnswerCache struct {
	cache     domain.Cache
	embedder  domain.EmbeddingService
	threshold float64
	ttl       time.Duration
}

func NewAnswerCache(c domain.Cache, embedder domain.EmbeddingService, cfg *config.Config) *AnswerCache {
	ac := &AnswerCache{
		cache:     c,
		embedder:  embedder,
		threshold: defaultSimilarityThreshold,
		ttl:       defaultEvaluationsTTL,
	}
	if cfg != nil {
		ac.ttl = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Evaluations, defaultEvaluationsTTL)
		if cfg.Embedding.SimilarityThreshold > 0 {
			ac.threshold = cfg.Embedding.SimilarityThreshold
		}
	}
	return ac
}

func answerCacheKey(req domain.EvaluationRequest) string {
	return cache.CapabilityKey(domain.CapabilityEvaluateResponse, req.Question, req.Subtopic, req.JobRole)
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.Join(strings.Fields(answer), " "))
}

// Lookup returns cached evaluator text for an answer similar to req.Answer.
// On a miss it also returns the answer's embedding when one was computed, so
// Put does not embed the same text twice.
func (s *AnswerCache) Lookup(ctx context.Context, req domain.EvaluationRequest) (string, []float32, bool) {
	key := answerCacheKey(req)
	entries, err := s.cache.HGetAll(ctx, key)
	if err != nil {
		logger.Get().Warn("AnswerCache: HGetAll failed", zap.String("key", key), zap.Error(err))
		return "", nil, false
	}
	if len(entries) == 0 {
		return "", nil, false
	}

	if raw, ok := entries[normalizeAnswer(req.Answer)]; ok {
		var entry cachedEvaluation
		if err := json.Unmarshal([]byte(raw), &entry); err == nil && entry.Evaluation != "" {
			logger.Get().Debug("AnswerCache: exact hit", zap.String("key", key))
			return entry.Evaluation, entry.Embedding, true
		}
	}

	embedding, err := s.embedder.Generate(ctx, req.Answer)
	if err != nil {
		logger.Get().Warn("AnswerCache: failed to embed answer", zap.String("key", key), zap.Error(err))
		return "", nil, false
	}

	var (
		best     cachedEvaluation
		bestSim  float64
		hasMatch bool
	)
	for _, raw := range entries {
		var entry cachedEvaluation
		if err := json.Unmarshal([]byte(raw), &entry); err != nil || len(entry.Embedding) == 0 {
			continue
		}
		sim, err := util.CosineSimilarity(embedding, entry.Embedding)
		if err != nil {
			continue
		}
		if sim >= s.threshold && (!hasMatch || sim > bestSim) {
			best, bestSim, hasMatch = entry, sim, true
		}
	}
	if !hasMatch {
		return "", embedding, false
	}

	logger.Get().Info("AnswerCache: similar answer found",
		zap.String("key", key),
		zap.Float64("similarity", bestSim))
	return best.Evaluation, embedding, true
}

// Put stores evaluation for req.Answer. A nil embedding is computed here.
func (s *AnswerCache) Put(ctx context.Context, req domain.EvaluationRequest, embedding []float32, evaluation string) {
	if strings.TrimSpace(evaluation) == "" {
		return
	}
	key := answerCacheKey(req)
	if len(embedding) == 0 {
		var err error
		if embedding, err = s.embedder.Generate(ctx, req.Answer); err != nil {
			logger.Get().Warn("AnswerCache: failed to embed answer, not caching", zap.String("key", key), zap.Error(err))
			return
		}
	}

	data, err := json.Marshal(cachedEvaluation{Evaluation: evaluation, Embedding: embedding, Answer: req.Answer})
	if err != nil {
		logger.Get().Error("AnswerCache: failed to marshal evaluation", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.HSet(ctx, key, normalizeAnswer(req.Answer), string(data)); err != nil {
		logger.Get().Warn("AnswerCache: HSet failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
		logger.Get().Warn("AnswerCache: Expire failed", zap.String("key", key), zap.Error(err))
	}
}
