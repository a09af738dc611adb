package handler

import (
	"context"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/feedback"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FeedbackHandler exposes the evaluator-text parser and the health check
type FeedbackHandler struct {
	validator *validation.Validator
}

func NewFeedbackHandler(validator *validation.Validator) *FeedbackHandler {
	return &FeedbackHandler{validator: validator}
}

// ParseFeedback godoc
// @Summary Parse evaluator text
// @Description Splits raw evaluator text into score, constructive feedback and reasoning
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.ParseFeedbackRequest true "Raw evaluator text"
// @Success 200 {object} domain.ParsedFeedback
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /feedback/parse [post]
func (h *FeedbackHandler) ParseFeedback(c *fiber.Ctx) error {
	var req dto.ParseFeedbackRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	return c.JSON(feedback.Parse(req.Text))
}

// HealthHandler reports liveness and cache reachability
type HealthHandler struct {
	sessions SessionStore
	cache    domain.Cache
}

// NewHealthHandler accepts a nil cache when caching is disabled.
func NewHealthHandler(sessions SessionStore, cache domain.Cache) *HealthHandler {
	return &HealthHandler{sessions: sessions, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Cache = "unreachable"
		} else {
			resp.Cache = "ok"
		}
	}
	resp.Pipelines, resp.Practices = h.sessions.Counts()
	return c.JSON(resp)
}
