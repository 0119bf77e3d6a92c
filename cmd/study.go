package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anik54992/eduboost/internal/app"
	"github.com/anik54992/eduboost/internal/llm"
	"github.com/anik54992/eduboost/internal/tutor"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Open the study dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// Tutor is optional. The app runs without it.
	var tutorSvc *tutor.Service
	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEvents())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI tutor features will be unavailable.")
	} else {
		tutorSvc = tutor.New(provider)
	}

	return app.Run(st, tutorSvc)
}
