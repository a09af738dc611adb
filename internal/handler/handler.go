package handler

import (
	"context"
	"strconv"

	"interview-prep/internal/domain"
	"interview-prep/internal/pipeline"
	"interview-prep/internal/practice"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionStore is the registry the handlers work against.
type SessionStore interface {
	CreatePipeline(jobRole, experienceLevel, interviewType string) (string, *pipeline.Controller)
	GetPipeline(id string) (*pipeline.Controller, error)
	DeletePipeline(id string) error
	StartPractice(ctx context.Context, pipelineID, category, subtopic string) (string, *practice.Session, error)
	GetPractice(id string) (*practice.Session, error)
	DeletePractice(id string) error
	Counts() (pipelines, practices int)
}

// bindJSON parses the body into req and validates it. An empty body is
// accepted as the zero value.
func bindJSON(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return domain.NewInvalidInputError("invalid request body: " + err.Error())
		}
	}
	return v.Struct(req)
}

func indexParam(c *fiber.Ctx) (int, error) {
	raw := c.Params("index")
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, domain.NewInvalidInputError("question index must be a non-negative integer, got " + strconv.Quote(raw))
	}
	return idx, nil
}
