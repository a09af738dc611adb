package handler

import (
	"interview-prep/internal/dto"
	"interview-prep/internal/practice"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PracticeHandler handles practice session endpoints
type PracticeHandler struct {
	sessions  SessionStore
	validator *validation.Validator
}

func NewPracticeHandler(sessions SessionStore, validator *validation.Validator) *PracticeHandler {
	return &PracticeHandler{sessions: sessions, validator: validator}
}

func questionResponse(sess *practice.Session, index int) dto.QuestionResponse {
	for _, v := range sess.View() {
		if v.Index == index {
			return dto.QuestionResponse{
				Index:          v.Index,
				Question:       v.Question,
				Response:       v.State.Response,
				Feedback:       v.State.Feedback,
				Checking:       v.State.Checking,
				Expanded:       v.State.Expanded,
				ParsedFeedback: v.Parsed,
			}
		}
	}
	return dto.QuestionResponse{Index: index}
}

// GetPractice godoc
// @Summary Get a practice session
// @Description Returns the selection and every question with its response, raw feedback and parsed feedback
// @Tags practice
// @Produce json
// @Param id path string true "Practice session ID"
// @Success 200 {object} dto.PracticeSessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /practice/{id} [get]
func (h *PracticeHandler) GetPractice(c *fiber.Ctx) error {
	id := c.Params("id")
	sess, err := h.sessions.GetPractice(id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPracticeSessionResponse(id, sess))
}

// SetResponse godoc
// @Summary Record an answer draft
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Practice session ID"
// @Param index path int true "Question index"
// @Param request body dto.SetResponseRequest true "Answer"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /practice/{id}/questions/{index}/response [put]
func (h *PracticeHandler) SetResponse(c *fiber.Ctx) error {
	sess, err := h.sessions.GetPractice(c.Params("id"))
	if err != nil {
		return err
	}
	idx, err := indexParam(c)
	if err != nil {
		return err
	}
	var req dto.SetResponseRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	if err := sess.SetResponse(idx, req.Response); err != nil {
		return err
	}
	return c.JSON(questionResponse(sess, idx))
}

// CheckResponse godoc
// @Summary Get feedback on an answer
// @Description Sends the recorded answer for evaluation. On failure the question's feedback is set to "Failed to get feedback." and 503 is returned.
// @Tags practice
// @Accept json
// @Produce json
// @Param id path string true "Practice session ID"
// @Param index path int true "Question index"
// @Param request body dto.CheckResponseRequest false "Optional user id"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /practice/{id}/questions/{index}/check [post]
func (h *PracticeHandler) CheckResponse(c *fiber.Ctx) error {
	sess, err := h.sessions.GetPractice(c.Params("id"))
	if err != nil {
		return err
	}
	idx, err := indexParam(c)
	if err != nil {
		return err
	}
	var req dto.CheckResponseRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	if err := sess.Check(c.UserContext(), idx, req.UserID); err != nil {
		return err
	}
	return c.JSON(questionResponse(sess, idx))
}

// ToggleExpanded godoc
// @Summary Show or hide reasoning
// @Tags practice
// @Produce json
// @Param id path string true "Practice session ID"
// @Param index path int true "Question index"
// @Success 200 {object} dto.ToggleResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /practice/{id}/questions/{index}/toggle [post]
func (h *PracticeHandler) ToggleExpanded(c *fiber.Ctx) error {
	sess, err := h.sessions.GetPractice(c.Params("id"))
	if err != nil {
		return err
	}
	idx, err := indexParam(c)
	if err != nil {
		return err
	}
	expanded, err := sess.ToggleExpanded(idx)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToggleResponse{Index: idx, Expanded: expanded})
}

// DeletePractice godoc
// @Summary Discard a practice session
// @Tags practice
// @Param id path string true "Practice session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /practice/{id} [delete]
func (h *PracticeHandler) DeletePractice(c *fiber.Ctx) error {
	if err := h.sessions.DeletePractice(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
