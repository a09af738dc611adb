package dto

import (
	"interview-prep/internal/domain"
)

// CreatePipelineRequest starts a subtopic pipeline
// @Description Inputs of a new pipeline
type CreatePipelineRequest struct {
	JobRole         string `json:"job_role" validate:"notblank,max=200" example:"Backend Engineer"`
	ExperienceLevel string `json:"experience_level" validate:"notblank,max=100" example:"Mid-Level"`
	InterviewType   string `json:"interview_type" validate:"question_type" example:"technical"`
}

// UpdatePipelineRequest replaces the pipeline inputs. Produced results are kept.
type UpdatePipelineRequest struct {
	JobRole         string `json:"job_role" validate:"notblank,max=200"`
	ExperienceLevel string `json:"experience_level" validate:"notblank,max=100"`
	InterviewType   string `json:"interview_type" validate:"question_type"`
}

// RunStageRequest is bound from the route.
type RunStageRequest struct {
	Stage string `json:"stage" validate:"stage"`
}

// SelectSubtopicRequest routes one categorized subtopic into practice
// @Description Category and subtopic chosen from the categorized result
type SelectSubtopicRequest struct {
	Category string `json:"category" validate:"notblank" example:"Technical Skills"`
	Subtopic string `json:"subtopic" validate:"notblank" example:"SQL"`
}

// CategoryResponse is one category with its subtopics
type CategoryResponse struct {
	Name      string   `json:"name"`
	Subtopics []string `json:"subtopics"`
}

// PipelineStateResponse is a pipeline snapshot
// @Description Pipeline inputs, stage results and which stages can run now
type PipelineStateResponse struct {
	ID                 string             `json:"id"`
	JobRole            string             `json:"job_role"`
	ExperienceLevel    string             `json:"experience_level"`
	InterviewType      string             `json:"interview_type"`
	Subtopics          []string           `json:"subtopics"`
	ValidationFeedback string             `json:"validation_feedback"`
	RefinedSubtopics   []string           `json:"refined_subtopics"`
	Explanation        string             `json:"explanation"`
	Categorized        []CategoryResponse `json:"categorized"`
	CanRun             map[string]bool    `json:"can_run"`
}

// NewPipelineStateResponse maps a state snapshot. Nil lists are rendered as
// empty arrays.
func NewPipelineStateResponse(id string, state domain.PipelineState, gates map[string]bool) PipelineStateResponse {
	resp := PipelineStateResponse{
		ID:                 id,
		JobRole:            state.JobRole,
		ExperienceLevel:    state.ExperienceLevel,
		InterviewType:      state.InterviewType,
		Subtopics:          nonNil(state.Subtopics),
		ValidationFeedback: state.ValidationFeedback,
		RefinedSubtopics:   nonNil(state.Refined.Subtopics),
		Explanation:        state.Refined.Explanation,
		Categorized:        make([]CategoryResponse, 0, len(state.Categorized)),
		CanRun:             gates,
	}
	for _, c := range state.Categorized {
		resp.Categorized = append(resp.Categorized, CategoryResponse{Name: c.Name, Subtopics: nonNil(c.Subtopics)})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
