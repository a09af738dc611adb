package domain

// Interview (question) types offered to the candidate.
const (
	QuestionTypeTechnical  = "technical"
	QuestionTypeBehavioral = "behavioral"
	QuestionTypeCaseStudy  = "case study"
)

// Suggested experience levels. Any non-empty level is accepted.
var ExperienceLevels = []string{"Entry-Level", "Mid-Level", "Senior"}

// PracticeSelection carries the parameters needed to start a practice
// session. It is built once from a pipeline snapshot and never mutated.
type PracticeSelection struct {
	Subtopic        string `json:"subtopic"`
	JobRole         string `json:"job_role"`
	ExperienceLevel string `json:"experience_level"`
	QuestionType    string `json:"question_type"`
}

// QuestionList is an ordered list of questions. A question's index is its
// identity for the lifetime of a practice session.
type QuestionList []string

// ParsedFeedback is the display form of one evaluator response.
type ParsedFeedback struct {
	ScoreText            string `json:"score_text"`
	ConstructiveFeedback string `json:"constructive_feedback"`
	Reasoning            string `json:"reasoning"`
}

// QuestionState is the per-question UI state of a practice session.
// Feedback holds the raw evaluator text; it is parsed on read.
type QuestionState struct {
	Response string `json:"response"`
	Feedback string `json:"feedback"`
	Checking bool   `json:"checking"`
	Expanded bool   `json:"expanded"`
}

// EvaluationRequest is the input of the evaluate-response capability.
type EvaluationRequest struct {
	Question string
	Answer   string
	Subtopic string
	JobRole  string
	UserID   string
}
