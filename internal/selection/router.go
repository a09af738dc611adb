// Package selection turns a chosen subtopic into practice-session parameters.
package selection

import (
	"interview-prep/internal/domain"
)

// Select builds the PracticeSelection for subtopic under category. The pair
// must come from state.Categorized; anything else is a caller error and
// returns a SELECTION_INVALID error rather than an empty selection.
func Select(category, subtopic string, state domain.PipelineState, interviewType string) (domain.PracticeSelection, error) {
	members, ok := state.Categorized.Lookup(category)
	if !ok || !members.Contains(subtopic) {
		return domain.PracticeSelection{}, domain.NewSelectionInvalidError(category, subtopic)
	}
	return domain.PracticeSelection{
		Subtopic:        subtopic,
		JobRole:         state.JobRole,
		ExperienceLevel: state.ExperienceLevel,
		QuestionType:    interviewType,
	}, nil
}
