package service

import (
	"context"
	"sync"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"
	"interview-prep/internal/pipeline"
	"interview-prep/internal/practice"
	"interview-prep/internal/selection"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

const defaultIdleTTL = 2 * time.Hour

type pipelineEntry struct {
	controller *pipeline.Controller
	lastUsed   time.Time
}

type practiceEntry struct {
	session  *practice.Session
	lastUsed time.Time
}

// SessionService keeps pipelines and practice sessions in memory, keyed by
// ULID. Entries idle for longer than the TTL are removed by Sweep.
type SessionService struct {
	caps    domain.Capabilities
	idleTTL time.Duration
	now     func() time.Time

	mu        sync.Mutex
	pipelines map[string]*pipelineEntry
	practices map[string]*practiceEntry
}

func NewSessionService(caps domain.Capabilities, idleTTL time.Duration) *SessionService {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &SessionService{
		caps:      caps,
		idleTTL:   idleTTL,
		now:       time.Now,
		pipelines: make(map[string]*pipelineEntry),
		practices: make(map[string]*practiceEntry),
	}
}

// CreatePipeline registers a new pipeline for the given inputs.
func (s *SessionService) CreatePipeline(jobRole, experienceLevel, interviewType string) (string, *pipeline.Controller) {
	id := util.NewULID()
	c := pipeline.NewController(s.caps, jobRole, experienceLevel, interviewType)

	s.mu.Lock()
	s.pipelines[id] = &pipelineEntry{controller: c, lastUsed: s.now()}
	s.mu.Unlock()

	logger.Get().Info("Pipeline created", zap.String("pipeline_id", id), zap.String("job_role", jobRole))
	return id, c
}

func (s *SessionService) GetPipeline(id string) (*pipeline.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pipelines[id]
	if !ok {
		return nil, domain.NewNotFoundError("pipeline not found: " + id)
	}
	e.lastUsed = s.now()
	return e.controller, nil
}

func (s *SessionService) DeletePipeline(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pipelines[id]; !ok {
		return domain.NewNotFoundError("pipeline not found: " + id)
	}
	delete(s.pipelines, id)
	return nil
}

// StartPractice routes the chosen subtopic of a pipeline into a new practice
// session and loads its questions. The session is only registered when the
// questions loaded.
func (s *SessionService) StartPractice(ctx context.Context, pipelineID, category, subtopic string) (string, *practice.Session, error) {
	c, err := s.GetPipeline(pipelineID)
	if err != nil {
		return "", nil, err
	}
	state := c.State()
	sel, err := selection.Select(category, subtopic, state, state.InterviewType)
	if err != nil {
		return "", nil, err
	}

	sess := practice.NewSession(sel, s.caps, s.caps)
	if err := sess.Load(ctx); err != nil {
		return "", nil, err
	}

	id := util.NewULID()
	s.mu.Lock()
	s.practices[id] = &practiceEntry{session: sess, lastUsed: s.now()}
	s.mu.Unlock()

	logger.Get().Info("Practice session started",
		zap.String("practice_id", id),
		zap.String("pipeline_id", pipelineID),
		zap.String("subtopic", subtopic))
	return id, sess, nil
}

func (s *SessionService) GetPractice(id string) (*practice.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.practices[id]
	if !ok {
		return nil, domain.NewNotFoundError("practice session not found: " + id)
	}
	e.lastUsed = s.now()
	return e.session, nil
}

func (s *SessionService) DeletePractice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.practices[id]; !ok {
		return domain.NewNotFoundError("practice session not found: " + id)
	}
	delete(s.practices, id)
	return nil
}

// Sweep removes idle entries and returns how many were removed.
func (s *SessionService) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.pipelines {
		if e.lastUsed.Before(cutoff) {
			delete(s.pipelines, id)
			removed++
		}
	}
	for id, e := range s.practices {
		if e.lastUsed.Before(cutoff) {
			delete(s.practices, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SessionService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Get().Info("Evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}

// Counts returns the number of live pipelines and practice sessions.
func (s *SessionService) Counts() (pipelines, practices int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pipelines), len(s.practices)
}
