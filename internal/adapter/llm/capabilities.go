package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"
)

// Capabilities implements domain.Capabilities with one prompt per capability.
type Capabilities struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
}

func NewCapabilities(model llms.Model, cfg config.LLMConfig) *Capabilities {
	return &Capabilities{
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

var _ domain.Capabilities = (*Capabilities)(nil)

// call renders the prompt and sends it to the model. Any failure here is a
// capability failure; shape problems are reported by the callers.
func (c *Capabilities) call(ctx context.Context, capability string, tmpl prompts.PromptTemplate, values map[string]any) (string, error) {
	l := logger.Get()

	prompt, err := tmpl.Format(values)
	if err != nil {
		return "", domain.NewInternalError(fmt.Sprintf("failed to render %s prompt", capability), err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(c.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("capability", capability), zap.Error(err))
		} else {
			l.Error("Failed to get response from LLM", zap.String("capability", capability), zap.Error(err))
		}
		return "", domain.NewCapabilityFailureError(capability, err)
	}

	l.Debug("Raw LLM response received",
		zap.String("capability", capability),
		zap.Duration("duration", time.Since(start)),
		zap.String("raw_response", response))
	return response, nil
}

func (c *Capabilities) malformed(capability, raw string, err error) error {
	logger.Get().Error("LLM response did not match the expected shape",
		zap.String("capability", capability),
		zap.String("raw_response", raw),
		zap.Error(err))
	return domain.NewMalformedResultError(capability, err)
}

func (c *Capabilities) GenerateSubtopics(ctx context.Context, jobRole, experienceLevel string) (domain.SubtopicSet, error) {
	raw, err := c.call(ctx, domain.CapabilityGenerateSubtopics, subtopicsPrompt, map[string]any{
		"job_role":         jobRole,
		"experience_level": experienceLevel,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Subtopics []string `json:"subtopics"`
	}
	if err := decodeStructured(raw, subtopicsSchema, &resp); err != nil {
		return nil, c.malformed(domain.CapabilityGenerateSubtopics, raw, err)
	}
	return domain.SubtopicSet(resp.Subtopics), nil
}

func (c *Capabilities) ValidateSubtopics(ctx context.Context, subtopics domain.SubtopicSet, jobRole string) (string, error) {
	raw, err := c.call(ctx, domain.CapabilityValidateSubtopics, validatePrompt, map[string]any{
		"job_role":  jobRole,
		"subtopics": strings.Join(subtopics, ", "),
	})
	if err != nil {
		return "", err
	}
	return cleanResponse(raw), nil
}

// RefineSubtopics keeps the whole model response as the explanation.
func (c *Capabilities) RefineSubtopics(ctx context.Context, subtopics domain.SubtopicSet, jobRole, validationFeedback string) (*domain.RefinedSubtopics, error) {
	raw, err := c.call(ctx, domain.CapabilityRefineSubtopics, refinePrompt, map[string]any{
		"feedback":  validationFeedback,
		"job_role":  jobRole,
		"subtopics": strings.Join(subtopics, ", "),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Refined []string `json:"refined_subtopics"`
	}
	if err := decodeStructured(raw, refinedSchema, &resp); err != nil {
		return nil, c.malformed(domain.CapabilityRefineSubtopics, raw, err)
	}
	refined := domain.SubtopicSet(resp.Refined)
	if refined == nil {
		refined = domain.SubtopicSet{}
	}
	return &domain.RefinedSubtopics{Subtopics: refined, Explanation: raw}, nil
}

func (c *Capabilities) CategorizeSubtopics(ctx context.Context, subtopics domain.SubtopicSet) (domain.CategorizedSubtopics, error) {
	raw, err := c.call(ctx, domain.CapabilityCategorizeSubtopics, categorizePrompt, map[string]any{
		"subtopics": strings.Join(subtopics, ", "),
	})
	if err != nil {
		return nil, err
	}

	var resp map[string]any
	if err := decodeStructured(raw, categoriesSchema, &resp); err != nil {
		return nil, c.malformed(domain.CapabilityCategorizeSubtopics, raw, err)
	}
	return toCategories(resp), nil
}

// toCategories normalizes category values to lists: a single string becomes
// a one-element list and an empty value an empty list. Known categories come
// first in their usual order, the rest sorted by name.
func toCategories(resp map[string]any) domain.CategorizedSubtopics {
	names := make([]string, 0, len(resp))
	for _, name := range defaultCategories {
		if _, ok := resp[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range resp {
		if !isDefaultCategory(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	out := make(domain.CategorizedSubtopics, 0, len(names))
	for _, name := range names {
		members := domain.SubtopicSet{}
		switch v := resp[name].(type) {
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					members = append(members, s)
				}
			}
		case string:
			if v != "" {
				members = append(members, v)
			}
		}
		out = append(out, domain.Category{Name: name, Subtopics: members})
	}
	return out
}

func isDefaultCategory(name string) bool {
	for _, c := range defaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

func (c *Capabilities) GenerateQuestions(ctx context.Context, selection domain.PracticeSelection) (string, error) {
	raw, err := c.call(ctx, domain.CapabilityGenerateQuestions, questionsPrompt, map[string]any{
		"question_type":    selection.QuestionType,
		"experience_level": selection.ExperienceLevel,
		"job_role":         selection.JobRole,
		"subtopic":         selection.Subtopic,
	})
	if err != nil {
		return "", err
	}
	return cleanResponse(raw), nil
}

func (c *Capabilities) EvaluateResponse(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	raw, err := c.call(ctx, domain.CapabilityEvaluateResponse, evaluatePrompt, map[string]any{
		"question": req.Question,
		"answer":   req.Answer,
	})
	if err != nil {
		return "", err
	}
	return cleanResponse(raw), nil
}
