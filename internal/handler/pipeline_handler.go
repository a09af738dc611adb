package handler

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/pipeline"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PipelineHandler handles the subtopic pipeline endpoints
type PipelineHandler struct {
	sessions  SessionStore
	validator *validation.Validator
}

func NewPipelineHandler(sessions SessionStore, validator *validation.Validator) *PipelineHandler {
	return &PipelineHandler{sessions: sessions, validator: validator}
}

func stateResponse(id string, c *pipeline.Controller) dto.PipelineStateResponse {
	gates := make(map[string]bool, len(pipeline.Order))
	for name, ok := range c.Gates() {
		gates[string(name)] = ok
	}
	return dto.NewPipelineStateResponse(id, c.State(), gates)
}

// CreatePipeline godoc
// @Summary Start a subtopic pipeline
// @Description Creates a pipeline for a job role, experience level and interview type. No stage is run.
// @Tags pipeline
// @Accept json
// @Produce json
// @Param request body dto.CreatePipelineRequest true "Pipeline inputs"
// @Success 201 {object} dto.PipelineStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /pipelines [post]
func (h *PipelineHandler) CreatePipeline(c *fiber.Ctx) error {
	var req dto.CreatePipelineRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	id, ctl := h.sessions.CreatePipeline(req.JobRole, req.ExperienceLevel, req.InterviewType)
	return c.Status(fiber.StatusCreated).JSON(stateResponse(id, ctl))
}

// GetPipeline godoc
// @Summary Get pipeline state
// @Description Returns the pipeline snapshot and which stages can run now
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline ID"
// @Success 200 {object} dto.PipelineStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pipelines/{id} [get]
func (h *PipelineHandler) GetPipeline(c *fiber.Ctx) error {
	id := c.Params("id")
	ctl, err := h.sessions.GetPipeline(id)
	if err != nil {
		return err
	}
	return c.JSON(stateResponse(id, ctl))
}

// UpdatePipeline godoc
// @Summary Change pipeline inputs
// @Description Replaces job role, experience level and interview type. Results already produced are kept.
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param request body dto.UpdatePipelineRequest true "Pipeline inputs"
// @Success 200 {object} dto.PipelineStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pipelines/{id} [put]
func (h *PipelineHandler) UpdatePipeline(c *fiber.Ctx) error {
	id := c.Params("id")
	ctl, err := h.sessions.GetPipeline(id)
	if err != nil {
		return err
	}
	var req dto.UpdatePipelineRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	ctl.UpdateInputs(req.JobRole, req.ExperienceLevel, req.InterviewType)
	return c.JSON(stateResponse(id, ctl))
}

// RunStage godoc
// @Summary Run one pipeline stage
// @Description Runs generate, validate, refine or categorize. Fails with 409 when the stage's inputs are missing and 503 when the model call fails; the previous state is kept on failure.
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param stage path string true "Stage" Enums(generate, validate, refine, categorize)
// @Success 200 {object} dto.PipelineStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /pipelines/{id}/stages/{stage} [post]
func (h *PipelineHandler) RunStage(c *fiber.Ctx) error {
	id := c.Params("id")
	req := dto.RunStageRequest{Stage: c.Params("stage")}
	if err := h.validator.Struct(req); err != nil {
		return err
	}
	ctl, err := h.sessions.GetPipeline(id)
	if err != nil {
		return err
	}

	stage, _ := pipeline.ParseStageName(req.Stage)
	if err := ctl.Run(c.UserContext(), stage); err != nil {
		logger.Get().Warn("Stage run failed",
			zap.String("pipeline_id", id),
			zap.String("stage", req.Stage),
			zap.String("code", string(domain.CodeOf(err))))
		return err
	}
	return c.JSON(stateResponse(id, ctl))
}

// SelectSubtopic godoc
// @Summary Start practice on a subtopic
// @Description Routes a categorized subtopic into a practice session and generates its questions
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Pipeline ID"
// @Param request body dto.SelectSubtopicRequest true "Chosen category and subtopic"
// @Success 201 {object} dto.PracticeSessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /pipelines/{id}/select [post]
func (h *PipelineHandler) SelectSubtopic(c *fiber.Ctx) error {
	var req dto.SelectSubtopicRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	practiceID, sess, err := h.sessions.StartPractice(c.UserContext(), c.Params("id"), req.Category, req.Subtopic)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPracticeSessionResponse(practiceID, sess))
}

// DeletePipeline godoc
// @Summary Discard a pipeline
// @Tags pipeline
// @Param id path string true "Pipeline ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /pipelines/{id} [delete]
func (h *PipelineHandler) DeletePipeline(c *fiber.Ctx) error {
	if err := h.sessions.DeletePipeline(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
