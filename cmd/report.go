package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anik54992/eduboost/internal/report"
	"github.com/anik54992/eduboost/internal/study"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write today's report card as an HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		now := time.Now()

		sessions, err := st.Sessions().All(ctx)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		subjects, err := st.Subjects().All(ctx)
		if err != nil {
			return fmt.Errorf("load subjects: %w", err)
		}
		tasks, err := st.Tasks().ByDate(ctx, study.DateOf(now))
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		goals, err := st.Goals().Get(ctx)
		if err != nil {
			goals = study.DefaultGoals()
		}

		data := report.Build(sessions, tasks, subjects, goals, now)

		if out == "" {
			out = fmt.Sprintf("eduboost-report-%s.html", data.Date)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()

		if err := report.Render(f, data); err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		fmt.Println("Report written to", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "Output file path (default eduboost-report-<date>.html)")
}
