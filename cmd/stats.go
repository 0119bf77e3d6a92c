package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/study"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		day := analytics.TodayReport(sessions, tasks, now)
		streak := analytics.Streak(sessions, now)

		fmt.Printf("EduBoost — %s\n", day.Date)
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("Today:   %.1fh studied · grade %s · %d/%d tasks · %d day streak\n",
			day.Hours, day.Grade, day.CompletedTasks, day.TotalTasks, streak)

		fmt.Println()
		fmt.Println("Goals")
		for _, wp := range analytics.GoalProgress(sessions, goals, now) {
			fmt.Printf("  %-13s %5.1fh / %-5.0fh  %5.1f%%  %s\n",
				wp.Label, wp.CurrentHours, wp.GoalHours, wp.Percent, wp.Status)
		}

		fmt.Println()
		fmt.Println("Last 7 days")
		for _, d := range analytics.WeekSeries(sessions, now) {
			bars := strings.Repeat("█", int(d.Hours*2))
			fmt.Printf("  %s  %-24s %.1fh\n", d.Date, bars, d.Hours)
		}

		bySubject := analytics.HoursBySubject(sessions, subjects)
		if len(bySubject) > 0 {
			fmt.Println()
			fmt.Println("Time by subject")
			for _, sh := range bySubject {
				fmt.Printf("  %-30s %6.1fh\n", sh.Name, sh.Hours)
			}
		}

		return nil
	},
}
