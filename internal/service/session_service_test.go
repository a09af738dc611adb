package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func categorizedPipeline(t *testing.T, svc *SessionService, caps *MockCapabilities) string {
	t.Helper()
	ctx := context.Background()
	subtopics := domain.SubtopicSet{"SQL", "Communication"}
	caps.On("GenerateSubtopics", ctx, "Backend Engineer", "Mid-Level").Return(subtopics, nil)
	caps.On("ValidateSubtopics", ctx, subtopics, "Backend Engineer").Return("ok", nil)
	caps.On("RefineSubtopics", ctx, subtopics, "Backend Engineer", "ok").
		Return(&domain.RefinedSubtopics{Subtopics: subtopics}, nil)
	caps.On("CategorizeSubtopics", ctx, subtopics).Return(domain.CategorizedSubtopics{
		{Name: "Technical Skills", Subtopics: domain.SubtopicSet{"SQL"}},
		{Name: "Soft Skills", Subtopics: domain.SubtopicSet{"Communication"}},
	}, nil)

	id, c := svc.CreatePipeline("Backend Engineer", "Mid-Level", domain.QuestionTypeTechnical)
	for _, name := range pipeline.Order {
		require.NoError(t, c.Run(ctx, name))
	}
	return id
}

func TestSessionService_PipelineLifecycle(t *testing.T) {
	svc := NewSessionService(new(MockCapabilities), time.Hour)

	id, c := svc.CreatePipeline("Nurse", "Senior", domain.QuestionTypeBehavioral)
	require.NotEmpty(t, id)

	got, err := svc.GetPipeline(id)
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, svc.DeletePipeline(id))
	_, err = svc.GetPipeline(id)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	assert.True(t, domain.IsCode(svc.DeletePipeline(id), domain.CodeNotFound))
}

func TestSessionService_StartPractice(t *testing.T) {
	ctx := context.Background()
	caps := new(MockCapabilities)
	svc := NewSessionService(caps, time.Hour)
	pipelineID := categorizedPipeline(t, svc, caps)

	sel := domain.PracticeSelection{
		Subtopic:        "SQL",
		JobRole:         "Backend Engineer",
		ExperienceLevel: "Mid-Level",
		QuestionType:    domain.QuestionTypeTechnical,
	}
	caps.On("GenerateQuestions", ctx, sel).Return("1. What is an index?", nil).Once()

	practiceID, sess, err := svc.StartPractice(ctx, pipelineID, "Technical Skills", "SQL")
	require.NoError(t, err)
	assert.Equal(t, sel, sess.Selection())
	assert.Equal(t, domain.QuestionList{"What is an index?"}, sess.Questions())

	got, err := svc.GetPractice(practiceID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, practices := svc.Counts()
	assert.Equal(t, 1, practices)
}

func TestSessionService_StartPracticeErrors(t *testing.T) {
	ctx := context.Background()
	caps := new(MockCapabilities)
	svc := NewSessionService(caps, time.Hour)
	pipelineID := categorizedPipeline(t, svc, caps)

	_, _, err := svc.StartPractice(ctx, "missing", "Technical Skills", "SQL")
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))

	_, _, err = svc.StartPractice(ctx, pipelineID, "Soft Skills", "SQL")
	assert.True(t, domain.IsCode(err, domain.CodeSelectionInvalid))

	caps.On("GenerateQuestions", ctx, mock.Anything).
		Return("", domain.NewCapabilityFailureError(domain.CapabilityGenerateQuestions, errors.New("timeout"))).Once()
	_, _, err = svc.StartPractice(ctx, pipelineID, "Soft Skills", "Communication")
	assert.True(t, domain.IsCode(err, domain.CodeCapabilityFailure))

	_, practices := svc.Counts()
	assert.Zero(t, practices, "failed loads are not registered")
}

func TestSessionService_Sweep(t *testing.T) {
	svc := NewSessionService(new(MockCapabilities), time.Hour)
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale, _ := svc.CreatePipeline("Chef", "Senior", domain.QuestionTypeTechnical)
	now = now.Add(50 * time.Minute)
	fresh, _ := svc.CreatePipeline("Chef", "Senior", domain.QuestionTypeTechnical)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, svc.Sweep())

	_, err := svc.GetPipeline(stale)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
	_, err = svc.GetPipeline(fresh)
	assert.NoError(t, err)

	// GetPipeline refreshed fresh, so it survives another 50 minutes.
	now = now.Add(50 * time.Minute)
	assert.Equal(t, 0, svc.Sweep())
}
