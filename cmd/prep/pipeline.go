package main

import (
	"fmt"
	"io"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/pipeline"
	"interview-prep/internal/validation"

	"github.com/spf13/cobra"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run generate, validate, refine and categorize for a job role",
	RunE:  runPipeline,
}

var (
	pipelineRole  string
	pipelineLevel string
	pipelineType  string
	pipelineUntil string
)

func init() {
	pipelineCmd.Flags().StringVarP(&pipelineRole, "role", "r", "", "Job role, e.g. \"Backend Engineer\" (required)")
	pipelineCmd.Flags().StringVarP(&pipelineLevel, "level", "l", "Mid-Level", "Experience level")
	pipelineCmd.Flags().StringVarP(&pipelineType, "type", "t", domain.QuestionTypeTechnical, "Interview type: technical, behavioral or case study")
	pipelineCmd.Flags().StringVar(&pipelineUntil, "until", string(pipeline.StageCategorize), "Last stage to run")
	_ = pipelineCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(pipelineRole) == "" {
		return fmt.Errorf("--role must not be blank")
	}
	if !validation.IsQuestionType(pipelineType) {
		return fmt.Errorf("unknown interview type %q", pipelineType)
	}
	until, ok := pipeline.ParseStageName(pipelineUntil)
	if !ok {
		return fmt.Errorf("unknown stage %q", pipelineUntil)
	}

	caps, err := newCapabilities()
	if err != nil {
		return err
	}

	c := pipeline.NewController(caps, pipelineRole, pipelineLevel, pipelineType)
	for _, name := range pipeline.Order {
		if err := c.Run(cmd.Context(), name); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
		if name == until {
			break
		}
	}

	printState(cmd.OutOrStdout(), c.State())
	return nil
}

func printState(w io.Writer, state domain.PipelineState) {
	fmt.Fprintf(w, "Subtopics for %s (%s):\n", state.JobRole, state.ExperienceLevel)
	for _, s := range state.Subtopics {
		fmt.Fprintf(w, "  - %s\n", s)
	}
	if state.ValidationFeedback != "" {
		fmt.Fprintf(w, "\nValidation:\n%s\n", state.ValidationFeedback)
	}
	if len(state.Refined.Subtopics) > 0 {
		fmt.Fprintln(w, "\nRefined:")
		for _, s := range state.Refined.Subtopics {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	for _, cat := range state.Categorized {
		fmt.Fprintf(w, "\n%s:\n", cat.Name)
		for _, s := range cat.Subtopics {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}
