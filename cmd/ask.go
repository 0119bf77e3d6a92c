package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anik54992/eduboost/internal/analytics"
	"github.com/anik54992/eduboost/internal/llm"
	"github.com/anik54992/eduboost/internal/study"
	"github.com/anik54992/eduboost/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.LLMEvents())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		svc := tutor.New(provider)

		now := time.Now()
		sessions, _ := st.Sessions().All(ctx)
		subjects, _ := st.Subjects().All(ctx)
		tasks, _ := st.Tasks().ByDate(ctx, study.DateOf(now))

		day := analytics.TodayReport(sessions, tasks, now)
		sctx := tutor.StudyContext{
			Date:       day.Date,
			TodayHours: day.Hours,
			StreakDays: analytics.Streak(sessions, now),
			Grade:      day.Grade,
			TasksDone:  day.CompletedTasks,
			TasksTotal: day.TotalTasks,
		}
		for _, sh := range analytics.HoursBySubject(sessions, subjects) {
			sctx.SubjectTime = append(sctx.SubjectTime, tutor.SubjectHours{
				Subject: sh.Name,
				Hours:   sh.Hours,
			})
		}

		askCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
		fmt.Println(svc.Ask(askCtx, question, sctx))
		return nil
	},
}
