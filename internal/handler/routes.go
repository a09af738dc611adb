package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every route handler.
type Handlers struct {
	Pipeline *PipelineHandler
	Practice *PracticeHandler
	Feedback *FeedbackHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the API on router, normally the /api group.
func RegisterRoutes(router fiber.Router, h Handlers) {
	router.Get("/health", h.Health.Health)

	pipelines := router.Group("/pipelines")
	pipelines.Post("/", h.Pipeline.CreatePipeline)
	pipelines.Get("/:id", h.Pipeline.GetPipeline)
	pipelines.Put("/:id", h.Pipeline.UpdatePipeline)
	pipelines.Delete("/:id", h.Pipeline.DeletePipeline)
	pipelines.Post("/:id/stages/:stage", h.Pipeline.RunStage)
	pipelines.Post("/:id/select", h.Pipeline.SelectSubtopic)

	practice := router.Group("/practice")
	practice.Get("/:id", h.Practice.GetPractice)
	practice.Delete("/:id", h.Practice.DeletePractice)
	practice.Put("/:id/questions/:index/response", h.Practice.SetResponse)
	practice.Post("/:id/questions/:index/check", h.Practice.CheckResponse)
	practice.Post("/:id/questions/:index/toggle", h.Practice.ToggleExpanded)

	router.Post("/feedback/parse", h.Feedback.ParseFeedback)
}
