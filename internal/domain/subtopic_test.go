package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtopicSet_CloneDoesNotAlias(t *testing.T) {
	orig := SubtopicSet{"SQL", "APIs"}
	clone := orig.Clone()
	clone[0] = "Caching"

	assert.Equal(t, SubtopicSet{"SQL", "APIs"}, orig)
	assert.Nil(t, SubtopicSet(nil).Clone())
	assert.True(t, orig.Contains("APIs"))
	assert.False(t, orig.Contains("apis"))
}

func TestCategorizedSubtopics_AddAndLookup(t *testing.T) {
	var c CategorizedSubtopics
	c = c.Add("Technical Skills", SubtopicSet{"SQL"})
	c = c.Add("Soft Skills", SubtopicSet{"Communication"})
	c = c.Add("Technical Skills", SubtopicSet{"SQL", "APIs"})

	assert.Equal(t, []string{"Technical Skills", "Soft Skills"}, c.Names(), "re-adding keeps position")

	got, ok := c.Lookup("Technical Skills")
	require.True(t, ok)
	assert.Equal(t, SubtopicSet{"SQL", "APIs"}, got)

	_, ok = c.Lookup("General")
	assert.False(t, ok)
}

func TestPipelineState_CloneIsDeep(t *testing.T) {
	state := PipelineState{
		JobRole:     "Data Analyst",
		Subtopics:   SubtopicSet{"Excel"},
		Refined:     RefinedSubtopics{Subtopics: SubtopicSet{"Excel"}, Explanation: "kept"},
		Categorized: CategorizedSubtopics{{Name: "Technical Skills", Subtopics: SubtopicSet{"Excel"}}},
	}
	clone := state.Clone()
	clone.Subtopics[0] = "x"
	clone.Refined.Subtopics[0] = "y"
	clone.Categorized[0].Subtopics[0] = "z"

	assert.Equal(t, "Excel", state.Subtopics[0])
	assert.Equal(t, "Excel", state.Refined.Subtopics[0])
	assert.Equal(t, "Excel", state.Categorized[0].Subtopics[0])
}

func TestDomainError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewCapabilityFailureError(CapabilityGenerateSubtopics, cause)

	assert.Equal(t, "capability generate_subtopics failed: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("stage generate: %w", err)
	assert.True(t, IsCode(wrapped, CodeCapabilityFailure))
	assert.Equal(t, CodeCapabilityFailure, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(cause))

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"code":"CAPABILITY_FAILURE","message":"capability generate_subtopics failed"}`, string(data))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{NewMissingFieldError("job_role"), NewInvalidFormatError("interview_type", "panel")}
	assert.Equal(t, `job_role is required; interview_type has an invalid value "panel"`, errs.Error())
}
