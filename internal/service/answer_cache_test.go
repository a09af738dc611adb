package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	answerCfg = &config.Config{
		CacheTTLs: config.CacheTTLConfig{Evaluations: "12h"},
		Embedding: config.EmbeddingConfig{SimilarityThreshold: 0.9},
	}

	evalReq = domain.EvaluationRequest{
		Question: "What is an index?",
		Answer:   "A B-tree over a column.",
		Subtopic: "SQL",
		JobRole:  "Backend Engineer",
	}
)

func cachedEntry(t *testing.T, evaluation string, embedding []float32) string {
	t.Helper()
	data, err := json.Marshal(cachedEvaluation{Evaluation: evaluation, Embedding: embedding})
	require.NoError(t, err)
	return string(data)
}

func TestAnswerCache_Lookup(t *testing.T) {
	ctx := context.Background()
	key := answerCacheKey(evalReq)

	t.Run("empty hash skips embedding", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HGetAll", ctx, key).Return(map[string]string{}, nil).Once()

		_, vec, ok := NewAnswerCache(mc, emb, answerCfg).Lookup(ctx, evalReq)
		assert.False(t, ok)
		assert.Nil(t, vec)
		emb.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("exact answer hit", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HGetAll", ctx, key).Return(map[string]string{
			"a b-tree over a column.": cachedEntry(t, "Score: 7/10", []float32{1, 0}),
		}, nil).Once()

		got, _, ok := NewAnswerCache(mc, emb, answerCfg).Lookup(ctx, evalReq)
		assert.True(t, ok)
		assert.Equal(t, "Score: 7/10", got)
		emb.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("similar answer hit picks the closest", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HGetAll", ctx, key).Return(map[string]string{
			"an index is a tree":  cachedEntry(t, "Score: 6/10", []float32{0.95, 0.31}),
			"b-tree on one column": cachedEntry(t, "Score: 8/10", []float32{0.99, 0.1}),
			"no idea":              cachedEntry(t, "Score: 1/10", []float32{0, 1}),
		}, nil).Once()
		emb.On("Generate", ctx, evalReq.Answer).Return([]float32{1, 0.1}, nil).Once()

		got, vec, ok := NewAnswerCache(mc, emb, answerCfg).Lookup(ctx, evalReq)
		assert.True(t, ok)
		assert.Equal(t, "Score: 8/10", got)
		assert.Equal(t, []float32{1, 0.1}, vec)
	})

	t.Run("nothing close enough", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HGetAll", ctx, key).Return(map[string]string{
			"no idea": cachedEntry(t, "Score: 1/10", []float32{0, 1}),
			"broken":  "not json",
		}, nil).Once()
		emb.On("Generate", ctx, evalReq.Answer).Return([]float32{1, 0}, nil).Once()

		_, vec, ok := NewAnswerCache(mc, emb, answerCfg).Lookup(ctx, evalReq)
		assert.False(t, ok)
		assert.Equal(t, []float32{1, 0}, vec)
	})

	t.Run("cache error is a miss", func(t *testing.T) {
		mc := new(MockCache)
		mc.On("HGetAll", ctx, key).Return(nil, errors.New("connection refused")).Once()

		_, _, ok := NewAnswerCache(mc, new(MockEmbeddingService), answerCfg).Lookup(ctx, evalReq)
		assert.False(t, ok)
	})

	t.Run("embedding error is a miss", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HGetAll", ctx, key).Return(map[string]string{"other": cachedEntry(t, "Score: 5/10", []float32{1, 0})}, nil).Once()
		emb.On("Generate", ctx, evalReq.Answer).Return(nil, errors.New("model not loaded")).Once()

		_, vec, ok := NewAnswerCache(mc, emb, answerCfg).Lookup(ctx, evalReq)
		assert.False(t, ok)
		assert.Nil(t, vec)
	})
}

func TestAnswerCache_Put(t *testing.T) {
	ctx := context.Background()
	key := answerCacheKey(evalReq)

	t.Run("stores with given embedding", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		mc.On("HSet", ctx, key, "a b-tree over a column.", mock.MatchedBy(func(v string) bool {
			var e cachedEvaluation
			return json.Unmarshal([]byte(v), &e) == nil && e.Evaluation == "Score: 7/10" && len(e.Embedding) == 2
		})).Return(nil).Once()
		mc.On("Expire", ctx, key, 12*time.Hour).Return(nil).Once()

		NewAnswerCache(mc, emb, answerCfg).Put(ctx, evalReq, []float32{1, 0}, "Score: 7/10")
		mc.AssertExpectations(t)
		emb.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("embeds when no embedding given", func(t *testing.T) {
		mc := new(MockCache)
		emb := new(MockEmbeddingService)
		emb.On("Generate", ctx, evalReq.Answer).Return([]float32{1, 0}, nil).Once()
		mc.On("HSet", ctx, key, mock.Anything, mock.Anything).Return(nil).Once()
		mc.On("Expire", ctx, key, 12*time.Hour).Return(nil).Once()

		NewAnswerCache(mc, emb, answerCfg).Put(ctx, evalReq, nil, "Score: 7/10")
		mc.AssertExpectations(t)
		emb.AssertExpectations(t)
	})

	t.Run("blank evaluation is not stored", func(t *testing.T) {
		mc := new(MockCache)
		NewAnswerCache(mc, new(MockEmbeddingService), answerCfg).Put(ctx, evalReq, []float32{1}, "  ")
		mc.AssertNotCalled(t, "HSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCachedCapabilities_EvaluateResponseUsesAnswerCache(t *testing.T) {
	ctx := context.Background()
	key := answerCacheKey(evalReq)

	inner := new(MockCapabilities)
	inner.On("EvaluateResponse", ctx, evalReq).Return("Score: 7/10 Constructive Feedback: Fine.", nil).Once()
	mc := new(MockCache)
	emb := new(MockEmbeddingService)
	mc.On("HGetAll", ctx, key).Return(map[string]string{"unrelated": cachedEntry(t, "Score: 2/10", []float32{0, 1})}, nil).Once()
	emb.On("Generate", ctx, evalReq.Answer).Return([]float32{1, 0}, nil).Once()
	mc.On("HSet", ctx, key, "a b-tree over a column.", mock.Anything).Return(nil).Once()
	mc.On("Expire", ctx, key, 12*time.Hour).Return(nil).Once()

	cc := NewCachedCapabilities(inner).WithAnswerCache(NewAnswerCache(mc, emb, answerCfg))
	got, err := cc.EvaluateResponse(ctx, evalReq)
	require.NoError(t, err)
	assert.Equal(t, "Score: 7/10 Constructive Feedback: Fine.", got)

	inner.AssertExpectations(t)
	mc.AssertExpectations(t)
	emb.AssertNumberOfCalls(t, "Generate", 1)
}
