package domain

import "context"

// Capability names, used in errors, logs and cache keys.
const (
	CapabilityGenerateSubtopics   = "generate_subtopics"
	CapabilityValidateSubtopics   = "validate_subtopics"
	CapabilityRefineSubtopics     = "refine_subtopics"
	CapabilityCategorizeSubtopics = "categorize_subtopics"
	CapabilityGenerateQuestions   = "generate_questions"
	CapabilityEvaluateResponse    = "evaluate_response"
)

// SubtopicCapabilities are the external text-generation calls backing the
// subtopic pipeline. Implementations return *DomainError values coded
// CodeCapabilityFailure or CodeMalformedResult.
type SubtopicCapabilities interface {
	GenerateSubtopics(ctx context.Context, jobRole, experienceLevel string) (SubtopicSet, error)
	ValidateSubtopics(ctx context.Context, subtopics SubtopicSet, jobRole string) (string, error)
	// RefineSubtopics returns nil only together with an error.
	RefineSubtopics(ctx context.Context, subtopics SubtopicSet, jobRole, validationFeedback string) (*RefinedSubtopics, error)
	CategorizeSubtopics(ctx context.Context, subtopics SubtopicSet) (CategorizedSubtopics, error)
}

// QuestionGenerator produces a raw, numbered block of questions.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, selection PracticeSelection) (string, error)
}

// ResponseEvaluator produces raw evaluator text for one answer.
type ResponseEvaluator interface {
	EvaluateResponse(ctx context.Context, req EvaluationRequest) (string, error)
}

// Capabilities is the full set of external capabilities.
type Capabilities interface {
	SubtopicCapabilities
	QuestionGenerator
	ResponseEvaluator
}
