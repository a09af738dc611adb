// Package pipeline sequences the subtopic refinement stages:
// generate, validate, refine and categorize.
package pipeline

import (
	"context"
	"errors"

	"interview-prep/internal/domain"
)

// StageName identifies one pipeline stage.
type StageName string

const (
	StageGenerate   StageName = "generate"
	StageValidate   StageName = "validate"
	StageRefine     StageName = "refine"
	StageCategorize StageName = "categorize"
)

// Order is the fixed stage sequence.
var Order = []StageName{StageGenerate, StageValidate, StageRefine, StageCategorize}

// ParseStageName converts a user-supplied name into a StageName.
func ParseStageName(s string) (StageName, bool) {
	for _, name := range Order {
		if string(name) == s {
			return name, true
		}
	}
	return "", false
}

// Applier writes a stage's output fields into the state.
type Applier func(state *domain.PipelineState)

// Stage is one step of the pipeline, bound to one external capability.
type Stage interface {
	Name() StageName
	// Check returns a PrerequisiteMissing error when a required upstream
	// field of state is empty.
	Check(state domain.PipelineState) error
	// Execute calls the capability with inputs read from state. On success it
	// returns the Applier that writes the stage's fields; on failure it
	// returns a CapabilityFailure or MalformedResult error and no Applier.
	Execute(ctx context.Context, state domain.PipelineState) (Applier, error)
}

// asCapabilityError makes sure capability errors carry a pipeline code.
// Adapters already return coded errors; anything else is a transport failure.
func asCapabilityError(capability string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewCapabilityFailureError(capability, err)
}

type generateStage struct {
	caps domain.SubtopicCapabilities
}

func (s *generateStage) Name() StageName { return StageGenerate }

func (s *generateStage) Check(state domain.PipelineState) error {
	var missing []string
	if state.JobRole == "" {
		missing = append(missing, "job_role")
	}
	if state.ExperienceLevel == "" {
		missing = append(missing, "experience_level")
	}
	if len(missing) > 0 {
		return domain.NewPrerequisiteMissingError(string(StageGenerate), missing...)
	}
	return nil
}

func (s *generateStage) Execute(ctx context.Context, state domain.PipelineState) (Applier, error) {
	subtopics, err := s.caps.GenerateSubtopics(ctx, state.JobRole, state.ExperienceLevel)
	if err != nil {
		return nil, asCapabilityError(domain.CapabilityGenerateSubtopics, err)
	}
	subtopics = subtopics.Clone()
	return func(st *domain.PipelineState) {
		st.Subtopics = subtopics
	}, nil
}

type validateStage struct {
	caps domain.SubtopicCapabilities
}

func (s *validateStage) Name() StageName { return StageValidate }

func (s *validateStage) Check(state domain.PipelineState) error {
	var missing []string
	if len(state.Subtopics) == 0 {
		missing = append(missing, "subtopics")
	}
	if state.JobRole == "" {
		missing = append(missing, "job_role")
	}
	if len(missing) > 0 {
		return domain.NewPrerequisiteMissingError(string(StageValidate), missing...)
	}
	return nil
}

func (s *validateStage) Execute(ctx context.Context, state domain.PipelineState) (Applier, error) {
	feedback, err := s.caps.ValidateSubtopics(ctx, state.Subtopics, state.JobRole)
	if err != nil {
		return nil, asCapabilityError(domain.CapabilityValidateSubtopics, err)
	}
	return func(st *domain.PipelineState) {
		st.ValidationFeedback = feedback
	}, nil
}

type refineStage struct {
	caps domain.SubtopicCapabilities
}

func (s *refineStage) Name() StageName { return StageRefine }

func (s *refineStage) Check(state domain.PipelineState) error {
	var missing []string
	if len(state.Subtopics) == 0 {
		missing = append(missing, "subtopics")
	}
	if state.JobRole == "" {
		missing = append(missing, "job_role")
	}
	if state.ValidationFeedback == "" {
		missing = append(missing, "validation_feedback")
	}
	if len(missing) > 0 {
		return domain.NewPrerequisiteMissingError(string(StageRefine), missing...)
	}
	return nil
}

func (s *refineStage) Execute(ctx context.Context, state domain.PipelineState) (Applier, error) {
	refined, err := s.caps.RefineSubtopics(ctx, state.Subtopics, state.JobRole, state.ValidationFeedback)
	if err != nil {
		return nil, asCapabilityError(domain.CapabilityRefineSubtopics, err)
	}
	if refined == nil || refined.Subtopics == nil {
		return nil, domain.NewMalformedResultError(domain.CapabilityRefineSubtopics,
			errors.New("refined_subtopics is not a list"))
	}
	result := domain.RefinedSubtopics{
		Subtopics:   refined.Subtopics.Clone(),
		Explanation: refined.Explanation,
	}
	return func(st *domain.PipelineState) {
		st.Refined = result
	}, nil
}

type categorizeStage struct {
	caps domain.SubtopicCapabilities
}

func (s *categorizeStage) Name() StageName { return StageCategorize }

func (s *categorizeStage) Check(state domain.PipelineState) error {
	if len(state.Refined.Subtopics) == 0 {
		return domain.NewPrerequisiteMissingError(string(StageCategorize), "refined.subtopics")
	}
	return nil
}

func (s *categorizeStage) Execute(ctx context.Context, state domain.PipelineState) (Applier, error) {
	categorized, err := s.caps.CategorizeSubtopics(ctx, state.Refined.Subtopics)
	if err != nil {
		return nil, asCapabilityError(domain.CapabilityCategorizeSubtopics, err)
	}
	categorized = categorized.Clone()
	return func(st *domain.PipelineState) {
		st.Categorized = categorized
	}, nil
}

// NewStages builds the four stages in pipeline order.
func NewStages(caps domain.SubtopicCapabilities) []Stage {
	return []Stage{
		&generateStage{caps: caps},
		&validateStage{caps: caps},
		&refineStage{caps: caps},
		&categorizeStage{caps: caps},
	}
}
