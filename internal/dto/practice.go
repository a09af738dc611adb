package dto

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/practice"
)

// SetResponseRequest records a draft answer
type SetResponseRequest struct {
	Response string `json:"response" validate:"max=10000" example:"An index is a B-tree over one or more columns."`
}

// CheckResponseRequest asks for feedback on the recorded answer
type CheckResponseRequest struct {
	UserID string `json:"user_id,omitempty" validate:"max=100"`
}

// QuestionResponse is one practice question with its state
type QuestionResponse struct {
	Index          int                    `json:"index"`
	Question       string                 `json:"question"`
	Response       string                 `json:"response"`
	Feedback       string                 `json:"feedback"`
	Checking       bool                   `json:"checking"`
	Expanded       bool                   `json:"expanded"`
	ParsedFeedback *domain.ParsedFeedback `json:"parsed_feedback,omitempty"`
}

// PracticeSessionResponse is a practice session view
// @Description Selection and questions of a practice session
type PracticeSessionResponse struct {
	ID        string                   `json:"id"`
	Selection domain.PracticeSelection `json:"selection"`
	Questions []QuestionResponse       `json:"questions"`
}

// ToggleResponse reports the new expanded flag
type ToggleResponse struct {
	Index    int  `json:"index"`
	Expanded bool `json:"expanded"`
}

func NewPracticeSessionResponse(id string, sess *practice.Session) PracticeSessionResponse {
	views := sess.View()
	resp := PracticeSessionResponse{
		ID:        id,
		Selection: sess.Selection(),
		Questions: make([]QuestionResponse, 0, len(views)),
	}
	for _, v := range views {
		resp.Questions = append(resp.Questions, QuestionResponse{
			Index:          v.Index,
			Question:       v.Question,
			Response:       v.State.Response,
			Feedback:       v.State.Feedback,
			Checking:       v.State.Checking,
			Expanded:       v.State.Expanded,
			ParsedFeedback: v.Parsed,
		})
	}
	return resp
}
