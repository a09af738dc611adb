package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSelection = domain.PracticeSelection{
	Subtopic:        "SQL",
	JobRole:         "Backend Engineer",
	ExperienceLevel: "Mid-Level",
	QuestionType:    domain.QuestionTypeTechnical,
}

func TestCachedCapabilities_GenerateSubtopics(t *testing.T) {
	ctx := context.Background()

	t.Run("every call reaches the capability", func(t *testing.T) {
		inner := new(MockCapabilities)
		inner.On("GenerateSubtopics", mock.Anything, "Backend Engineer", "Senior").Return(domain.SubtopicSet{"Caching"}, nil).Once()
		inner.On("GenerateSubtopics", mock.Anything, "Backend Engineer", "Senior").Return(domain.SubtopicSet{"Queues"}, nil).Once()

		cc := NewCachedCapabilities(inner)
		first, err := cc.GenerateSubtopics(ctx, "Backend Engineer", "Senior")
		require.NoError(t, err)
		second, err := cc.GenerateSubtopics(ctx, "Backend Engineer", "Senior")
		require.NoError(t, err)

		assert.Equal(t, domain.SubtopicSet{"Caching"}, first)
		assert.Equal(t, domain.SubtopicSet{"Queues"}, second)
		inner.AssertNumberOfCalls(t, "GenerateSubtopics", 2)
	})

	t.Run("capability errors are returned", func(t *testing.T) {
		capErr := domain.NewMalformedResultError(domain.CapabilityGenerateSubtopics, errors.New("no JSON"))
		inner := new(MockCapabilities)
		inner.On("GenerateSubtopics", mock.Anything, "Backend Engineer", "Senior").Return(nil, capErr).Once()

		cc := NewCachedCapabilities(inner)
		_, err := cc.GenerateSubtopics(ctx, "Backend Engineer", "Senior")
		assert.True(t, domain.IsCode(err, domain.CodeMalformedResult))
	})
}

func TestCachedCapabilities_RerunGenerateStage(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCapabilities)
	inner.On("GenerateSubtopics", mock.Anything, "Backend Engineer", "Mid-Level").Return(domain.SubtopicSet{"topic-1"}, nil).Once()
	inner.On("GenerateSubtopics", mock.Anything, "Backend Engineer", "Mid-Level").Return(domain.SubtopicSet{"topic-2"}, nil).Once()

	c := pipeline.NewController(NewCachedCapabilities(inner), "Backend Engineer", "Mid-Level", domain.QuestionTypeTechnical)

	require.NoError(t, c.Run(ctx, pipeline.StageGenerate))
	assert.Equal(t, domain.SubtopicSet{"topic-1"}, c.State().Subtopics)

	require.NoError(t, c.Run(ctx, pipeline.StageGenerate))
	assert.Equal(t, domain.SubtopicSet{"topic-2"}, c.State().Subtopics)
	inner.AssertNumberOfCalls(t, "GenerateSubtopics", 2)
}

func TestCachedCapabilities_GenerateQuestions(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCapabilities)
	inner.On("GenerateQuestions", mock.Anything, testSelection).Return("1. What is an index?", nil).Once()
	inner.On("GenerateQuestions", mock.Anything, testSelection).Return("1. What is a join?", nil).Once()

	cc := NewCachedCapabilities(inner)
	first, err := cc.GenerateQuestions(ctx, testSelection)
	require.NoError(t, err)
	second, err := cc.GenerateQuestions(ctx, testSelection)
	require.NoError(t, err)

	assert.Equal(t, "1. What is an index?", first)
	assert.Equal(t, "1. What is a join?", second)
	inner.AssertExpectations(t)
}

func TestCachedCapabilities_CollapsesConcurrentQuestionRequests(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCapabilities)
	inner.On("GenerateQuestions", mock.Anything, testSelection).
		Run(func(mock.Arguments) { time.Sleep(200 * time.Millisecond) }).
		Return("1. Why?", nil).Once()

	cc := NewCachedCapabilities(inner)

	const callers = 5
	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], _ = cc.GenerateQuestions(ctx, testSelection)
		}(i)
	}
	close(start)
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "1. Why?", r)
	}
	inner.AssertNumberOfCalls(t, "GenerateQuestions", 1)
}

func TestCachedCapabilities_CancelledCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	innerCtxErr := make(chan error, 1)

	inner := new(MockCapabilities)
	inner.On("GenerateQuestions", mock.Anything, testSelection).
		Run(func(args mock.Arguments) {
			close(started)
			time.Sleep(200 * time.Millisecond)
			innerCtxErr <- args.Get(0).(context.Context).Err()
		}).
		Return("1. Why?", nil).Once()

	cc := NewCachedCapabilities(inner)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cc.GenerateQuestions(firstCtx, testSelection)
		firstErr <- err
	}()
	<-started

	secondResult := make(chan string, 1)
	go func() {
		raw, err := cc.GenerateQuestions(context.Background(), testSelection)
		assert.NoError(t, err)
		secondResult <- raw
	}()
	time.Sleep(20 * time.Millisecond)
	cancelFirst()

	err := <-firstErr
	assert.True(t, domain.IsCode(err, domain.CodeCapabilityFailure))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, "1. Why?", <-secondResult)
	assert.NoError(t, <-innerCtxErr)
	inner.AssertNumberOfCalls(t, "GenerateQuestions", 1)
}

func TestCachedCapabilities_PassThrough(t *testing.T) {
	ctx := context.Background()
	inner := new(MockCapabilities)
	inner.On("ValidateSubtopics", ctx, domain.SubtopicSet{"SQL"}, "Analyst").Return("fine", nil).Once()
	inner.On("EvaluateResponse", ctx, domain.EvaluationRequest{Question: "q", Answer: "a"}).Return("Score: 5/10", nil).Once()

	cc := NewCachedCapabilities(inner)
	v, err := cc.ValidateSubtopics(ctx, domain.SubtopicSet{"SQL"}, "Analyst")
	require.NoError(t, err)
	assert.Equal(t, "fine", v)

	e, err := cc.EvaluateResponse(ctx, domain.EvaluationRequest{Question: "q", Answer: "a"})
	require.NoError(t, err)
	assert.Equal(t, "Score: 5/10", e)
	inner.AssertExpectations(t)
}
