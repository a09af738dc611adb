// Package main provides a command line front end to the interview prep
// pipeline, for scripting and for trying prompts without the HTTP server.
package main

import (
	"fmt"
	"os"

	"interview-prep/internal/adapter/llm"
	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "prep",
	Short:         "Interview prep from the command line",
	Long:          "prep generates interview subtopics for a job role, generates practice questions for a subtopic and parses evaluator feedback.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newCapabilities builds the model-backed capabilities from config. Tests
// replace it with a stub.
var newCapabilities = func() (domain.Capabilities, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	model, err := llm.NewModel(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewCapabilities(model, cfg.LLM), nil
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
