// Package practice runs one practice session: the questions generated for a
// PracticeSelection and the candidate's answers and feedback for each.
package practice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"interview-prep/internal/domain"
	"interview-prep/internal/feedback"
	"interview-prep/internal/logger"
	"interview-prep/internal/questions"

	"go.uber.org/zap"
)

const (
	// Shown in place of questions or feedback when the capability fails.
	FailedQuestionsText = "Failed to load questions."
	FailedFeedbackText  = "Failed to get feedback."
)

// QuestionView is one question with its state, as the view layer shows it.
type QuestionView struct {
	Index    int                    `json:"index"`
	Question string                 `json:"question"`
	State    domain.QuestionState   `json:"state"`
	Parsed   *domain.ParsedFeedback `json:"parsed_feedback,omitempty"`
}

// Session holds the questions of one selection and a state record per
// question index.
type Session struct {
	selection domain.PracticeSelection
	generator domain.QuestionGenerator
	evaluator domain.ResponseEvaluator

	mu        sync.Mutex
	raw       string
	questions domain.QuestionList
	states    map[int]domain.QuestionState
}

func NewSession(selection domain.PracticeSelection, generator domain.QuestionGenerator, evaluator domain.ResponseEvaluator) *Session {
	return &Session{
		selection: selection,
		generator: generator,
		evaluator: evaluator,
		states:    make(map[int]domain.QuestionState),
	}
}

func (s *Session) Selection() domain.PracticeSelection {
	return s.selection
}

// Load generates the question block and splits it. Loading again replaces
// the questions and clears every per-question record. When generation fails
// the session shows no questions and the error is returned.
func (s *Session) Load(ctx context.Context) error {
	l := logger.Get()
	l.Info("Generating practice questions",
		zap.String("subtopic", s.selection.Subtopic),
		zap.String("question_type", s.selection.QuestionType))

	raw, err := s.generator.GenerateQuestions(ctx, s.selection)
	if err != nil {
		l.Error("Question generation failed",
			zap.String("subtopic", s.selection.Subtopic),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		raw = FailedQuestionsText
	}

	list := questions.Split(raw)
	s.mu.Lock()
	s.raw = raw
	s.questions = list
	s.states = make(map[int]domain.QuestionState, len(list))
	s.mu.Unlock()

	if err != nil {
		return err
	}
	l.Info("Practice questions ready", zap.Int("count", len(list)))
	return nil
}

// Questions returns a copy of the current question list.
func (s *Session) Questions() domain.QuestionList {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(domain.QuestionList, len(s.questions))
	copy(out, s.questions)
	return out
}

// RawQuestions returns the unsplit generator output.
func (s *Session) RawQuestions() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// must be called with s.mu held
func (s *Session) checkIndex(index int) error {
	if index < 0 || index >= len(s.questions) {
		return domain.NewNotFoundError(fmt.Sprintf("question %d does not exist", index))
	}
	return nil
}

// SetResponse records the candidate's draft answer for a question.
func (s *Session) SetResponse(index int, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(index); err != nil {
		return err
	}
	st := s.states[index]
	st.Response = response
	s.states[index] = st
	return nil
}

// Check sends the recorded answer for evaluation and stores the raw
// evaluator text. A failed evaluation stores FailedFeedbackText and returns
// the error.
func (s *Session) Check(ctx context.Context, index int, userID string) error {
	s.mu.Lock()
	if err := s.checkIndex(index); err != nil {
		s.mu.Unlock()
		return err
	}
	st := s.states[index]
	if strings.TrimSpace(st.Response) == "" {
		s.mu.Unlock()
		return domain.NewInvalidInputError(fmt.Sprintf("question %d has no response to check", index))
	}
	if st.Checking {
		s.mu.Unlock()
		return domain.NewInvalidInputError(fmt.Sprintf("question %d is already being checked", index))
	}
	st.Checking = true
	s.states[index] = st
	req := domain.EvaluationRequest{
		Question: s.questions[index],
		Answer:   st.Response,
		Subtopic: s.selection.Subtopic,
		JobRole:  s.selection.JobRole,
		UserID:   userID,
	}
	s.mu.Unlock()

	result, err := s.evaluator.EvaluateResponse(ctx, req)

	l := logger.Get()
	if err != nil {
		l.Error("Response evaluation failed",
			zap.Int("question_index", index),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		result = FailedFeedbackText
	} else if score, ok := feedback.ScoreValue(result); ok {
		l.Info("Response evaluated", zap.Int("question_index", index), zap.Int("score", score))
	} else {
		l.Info("Response evaluated without a numeric score", zap.Int("question_index", index))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The question list may have been reloaded while the call was in flight.
	if s.checkIndex(index) != nil || s.questions[index] != req.Question {
		return err
	}
	st = s.states[index]
	st.Feedback = result
	st.Checking = false
	s.states[index] = st
	return err
}

// ToggleExpanded flips whether a question's reasoning is shown and returns
// the new value.
func (s *Session) ToggleExpanded(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	st := s.states[index]
	st.Expanded = !st.Expanded
	s.states[index] = st
	return st.Expanded, nil
}

// View returns every question with its state. Feedback is parsed on each
// call; nothing parsed is stored.
func (s *Session) View() []QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]QuestionView, 0, len(s.questions))
	for i, q := range s.questions {
		st := s.states[i]
		v := QuestionView{Index: i, Question: q, State: st}
		if st.Feedback != "" {
			parsed := feedback.Parse(st.Feedback)
			v.Parsed = &parsed
		}
		views = append(views, v)
	}
	return views
}
