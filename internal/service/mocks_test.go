package service

import (
	"context"
	"time"

	"interview-prep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCapabilities ---
type MockCapabilities struct {
	mock.Mock
}

func (m *MockCapabilities) GenerateSubtopics(ctx context.Context, jobRole, experienceLevel string) (domain.SubtopicSet, error) {
	args := m.Called(ctx, jobRole, experienceLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SubtopicSet), args.Error(1)
}

func (m *MockCapabilities) ValidateSubtopics(ctx context.Context, subtopics domain.SubtopicSet, jobRole string) (string, error) {
	args := m.Called(ctx, subtopics, jobRole)
	return args.String(0), args.Error(1)
}

func (m *MockCapabilities) RefineSubtopics(ctx context.Context, subtopics domain.SubtopicSet, jobRole, validationFeedback string) (*domain.RefinedSubtopics, error) {
	args := m.Called(ctx, subtopics, jobRole, validationFeedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefinedSubtopics), args.Error(1)
}

func (m *MockCapabilities) CategorizeSubtopics(ctx context.Context, subtopics domain.SubtopicSet) (domain.CategorizedSubtopics, error) {
	args := m.Called(ctx, subtopics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CategorizedSubtopics), args.Error(1)
}

func (m *MockCapabilities) GenerateQuestions(ctx context.Context, selection domain.PracticeSelection) (string, error) {
	args := m.Called(ctx, selection)
	return args.String(0), args.Error(1)
}

func (m *MockCapabilities) EvaluateResponse(ctx context.Context, req domain.EvaluationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCache) HSet(ctx context.Context, key string, field string, value string) error {
	args := m.Called(ctx, key, field, value)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

// --- MockEmbeddingService ---
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

var _ domain.Capabilities = (*MockCapabilities)(nil)
var _ domain.Cache = (*MockCache)(nil)
var _ domain.EmbeddingService = (*MockEmbeddingService)(nil)
