package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// Controller owns one session's PipelineState and the stage sequence.
//
// Stage runs are not serialized: two overlapping runs of the same stage both
// call their capability and the later one to finish wins. The mutex only
// guards the state fields themselves. Re-running an earlier stage leaves
// later stages' output in place until those stages are re-run.
type Controller struct {
	mu     sync.Mutex
	state  domain.PipelineState
	stages map[StageName]Stage
}

// NewController seeds a pipeline with the candidate's inputs.
func NewController(caps domain.SubtopicCapabilities, jobRole, experienceLevel, interviewType string) *Controller {
	c := &Controller{
		state: domain.PipelineState{
			JobRole:         jobRole,
			ExperienceLevel: experienceLevel,
			InterviewType:   interviewType,
		},
		stages: make(map[StageName]Stage, len(Order)),
	}
	for _, st := range NewStages(caps) {
		c.stages[st.Name()] = st
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() domain.PipelineState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// UpdateInputs changes the seed fields. Derived fields are kept as they are.
func (c *Controller) UpdateInputs(jobRole, experienceLevel, interviewType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.JobRole = jobRole
	c.state.ExperienceLevel = experienceLevel
	c.state.InterviewType = interviewType
}

// CanRun reports whether the stage's prerequisites currently hold.
func (c *Controller) CanRun(name StageName) bool {
	st, ok := c.stages[name]
	if !ok {
		return false
	}
	return st.Check(c.State()) == nil
}

// Gates returns CanRun for every stage.
func (c *Controller) Gates() map[StageName]bool {
	state := c.State()
	gates := make(map[StageName]bool, len(Order))
	for _, name := range Order {
		gates[name] = c.stages[name].Check(state) == nil
	}
	return gates
}

// Run executes one stage against the current state. On failure the state is
// left unchanged and the error carries one of the codes
// PREREQUISITE_MISSING, CAPABILITY_FAILURE or MALFORMED_RESULT.
func (c *Controller) Run(ctx context.Context, name StageName) error {
	l := logger.Get()

	st, ok := c.stages[name]
	if !ok {
		return domain.NewInvalidInputError(fmt.Sprintf("unknown stage %q", name))
	}

	snapshot := c.State()
	if err := st.Check(snapshot); err != nil {
		l.Warn("Pipeline stage invoked without prerequisites",
			zap.String("stage", string(name)),
			zap.Error(err))
		return err
	}

	l.Info("Running pipeline stage",
		zap.String("stage", string(name)),
		zap.String("job_role", snapshot.JobRole))
	start := time.Now()

	apply, err := st.Execute(ctx, snapshot)
	if err != nil {
		l.Error("Pipeline stage failed",
			zap.String("stage", string(name)),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	}

	c.mu.Lock()
	apply(&c.state)
	c.mu.Unlock()

	l.Info("Pipeline stage completed",
		zap.String("stage", string(name)),
		zap.Duration("duration", time.Since(start)))
	return nil
}
