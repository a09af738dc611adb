package service

import (
	"context"
	"fmt"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedCapabilities collapses concurrent identical subtopic and question
// generation calls and, when an AnswerCache is attached, reuses evaluator
// output for similar answers. Generation results are never kept past the
// call: running a stage again always reaches the model.
type CachedCapabilities struct {
	domain.Capabilities

	answers *AnswerCache
	sfGroup singleflight.Group
}

func NewCachedCapabilities(inner domain.Capabilities) *CachedCapabilities {
	return &CachedCapabilities{Capabilities: inner}
}

var _ domain.Capabilities = (*CachedCapabilities)(nil)

// WithAnswerCache enables reuse of evaluator output for similar answers.
func (c *CachedCapabilities) WithAnswerCache(answers *AnswerCache) *CachedCapabilities {
	c.answers = answers
	return c
}

// share runs fn once per key among concurrent callers. The shared call is
// detached from the caller's cancellation so one abandoned request does not
// fail the others; the adapter's own timeout still bounds it. A caller whose
// ctx ends stops waiting.
func (c *CachedCapabilities) share(ctx context.Context, capability, key string, fn func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.sfGroup.DoChan(key, func() (interface{}, error) {
		return fn(detached)
	})

	select {
	case <-ctx.Done():
		return nil, false, domain.NewCapabilityFailureError(capability, ctx.Err())
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	}
}

func (c *CachedCapabilities) GenerateSubtopics(ctx context.Context, jobRole, experienceLevel string) (domain.SubtopicSet, error) {
	key := cache.CapabilityKey(domain.CapabilityGenerateSubtopics, jobRole, experienceLevel)

	res, shared, err := c.share(ctx, domain.CapabilityGenerateSubtopics, key, func(ctx context.Context) (interface{}, error) {
		return c.Capabilities.GenerateSubtopics(ctx, jobRole, experienceLevel)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Subtopic generation shared with a concurrent request", zap.String("job_role", jobRole))
	}

	subtopics, ok := res.(domain.SubtopicSet)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected type from singleflight for subtopics: %T", res), nil)
	}
	// Collapsed callers share one result; hand each its own copy.
	return subtopics.Clone(), nil
}

func (c *CachedCapabilities) GenerateQuestions(ctx context.Context, selection domain.PracticeSelection) (string, error) {
	key := cache.CapabilityKey(domain.CapabilityGenerateQuestions,
		selection.Subtopic, selection.JobRole, selection.ExperienceLevel, selection.QuestionType)

	res, shared, err := c.share(ctx, domain.CapabilityGenerateQuestions, key, func(ctx context.Context) (interface{}, error) {
		return c.Capabilities.GenerateQuestions(ctx, selection)
	})
	if err != nil {
		return "", err
	}
	if shared {
		logger.Get().Debug("Question generation shared with a concurrent request", zap.String("subtopic", selection.Subtopic))
	}

	raw, ok := res.(string)
	if !ok {
		return "", domain.NewInternalError(fmt.Sprintf("unexpected type from singleflight for questions: %T", res), nil)
	}
	return raw, nil
}

func (c *CachedCapabilities) EvaluateResponse(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	if c.answers == nil {
		return c.Capabilities.EvaluateResponse(ctx, req)
	}

	evaluation, embedding, ok := c.answers.Lookup(ctx, req)
	if ok {
		return evaluation, nil
	}
	evaluation, err := c.Capabilities.EvaluateResponse(ctx, req)
	if err != nil {
		return "", err
	}
	c.answers.Put(ctx, req, embedding, evaluation)
	return evaluation, nil
}
