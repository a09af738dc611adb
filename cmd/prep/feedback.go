package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/feedback"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Parse evaluator text read from stdin",
	Long:  "Reads raw evaluator output from stdin and prints its score, constructive feedback and reasoning.",
	Args:  cobra.NoArgs,
	RunE:  runFeedback,
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an answer read from stdin against a question",
	Args:  cobra.NoArgs,
	RunE:  runEvaluate,
}

var (
	feedbackJSON     bool
	evaluateQuestion string
	evaluateSubtopic string
	evaluateRole     string
)

func init() {
	feedbackCmd.Flags().BoolVar(&feedbackJSON, "json", false, "Print the parsed feedback as JSON")

	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Question being answered (required)")
	evaluateCmd.Flags().StringVarP(&evaluateSubtopic, "subtopic", "s", "", "Subtopic of the question")
	evaluateCmd.Flags().StringVarP(&evaluateRole, "role", "r", "", "Job role")
	evaluateCmd.Flags().BoolVar(&feedbackJSON, "json", false, "Print the parsed feedback as JSON")
	_ = evaluateCmd.MarkFlagRequired("question")

	rootCmd.AddCommand(feedbackCmd, evaluateCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return printFeedback(cmd.OutOrStdout(), feedback.Parse(string(raw)))
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	answer, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if strings.TrimSpace(string(answer)) == "" {
		return fmt.Errorf("empty answer on stdin")
	}

	caps, err := newCapabilities()
	if err != nil {
		return err
	}
	raw, err := caps.EvaluateResponse(cmd.Context(), domain.EvaluationRequest{
		Question: evaluateQuestion,
		Answer:   string(answer),
		Subtopic: evaluateSubtopic,
		JobRole:  evaluateRole,
	})
	if err != nil {
		return err
	}
	return printFeedback(cmd.OutOrStdout(), feedback.Parse(raw))
}

func printFeedback(w io.Writer, parsed domain.ParsedFeedback) error {
	if feedbackJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	}
	fmt.Fprintln(w, parsed.ScoreText)
	if parsed.ConstructiveFeedback != "" {
		fmt.Fprintf(w, "\nFeedback:\n%s\n", parsed.ConstructiveFeedback)
	}
	if parsed.Reasoning != "" {
		fmt.Fprintf(w, "\nReasoning:\n%s\n", parsed.Reasoning)
	}
	return nil
}
