package main

import (
	"fmt"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/questions"
	"interview-prep/internal/validation"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate practice questions for one subtopic",
	RunE:  runQuestions,
}

var (
	questionsSubtopic string
	questionsRole     string
	questionsLevel    string
	questionsType     string
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsSubtopic, "subtopic", "s", "", "Subtopic to practice (required)")
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "", "Job role (required)")
	questionsCmd.Flags().StringVarP(&questionsLevel, "level", "l", "Mid-Level", "Experience level")
	questionsCmd.Flags().StringVarP(&questionsType, "type", "t", domain.QuestionTypeTechnical, "Interview type: technical, behavioral or case study")
	_ = questionsCmd.MarkFlagRequired("subtopic")
	_ = questionsCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(questionsSubtopic) == "" || strings.TrimSpace(questionsRole) == "" {
		return fmt.Errorf("--subtopic and --role must not be blank")
	}
	if !validation.IsQuestionType(questionsType) {
		return fmt.Errorf("unknown interview type %q", questionsType)
	}

	caps, err := newCapabilities()
	if err != nil {
		return err
	}

	raw, err := caps.GenerateQuestions(cmd.Context(), domain.PracticeSelection{
		Subtopic:        questionsSubtopic,
		JobRole:         questionsRole,
		ExperienceLevel: questionsLevel,
		QuestionType:    questionsType,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, q := range questions.Split(raw) {
		fmt.Fprintf(w, "%d. %s\n", i+1, q)
	}
	return nil
}
