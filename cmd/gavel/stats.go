package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/cli"
	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/stats"
)

func statsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the monthly spending summary",
		Long:  `Summarize a month's judged spending: counts and amounts per verdict, and how the unjustified share compares with the previous month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			if month == "" {
				month = stats.MonthKey(now)
			}
			monthStart, err := time.Parse("2006-01", month)
			if err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			current, err := store.GetExpensesByMonth(ctx, month)
			if err != nil {
				return err
			}
			previous, err := store.GetExpensesByMonth(ctx, stats.PreviousMonthKey(monthStart))
			if err != nil {
				return err
			}

			summary := stats.Summarize(current, previous)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s 소비 리포트", cli.ChartIcon, month)))
			fmt.Printf("총 %d건 · %s\n\n", summary.TotalCount, cli.FormatWon(summary.TotalAmount))
			fmt.Println(cli.RenderSummaryLine(model.VerdictGood, summary.GoodCount, summary.GoodAmount))
			fmt.Println(cli.RenderSummaryLine(model.VerdictBad, summary.BadCount, summary.BadAmount))
			fmt.Println(cli.RenderSummaryLine(model.VerdictNeutral, summary.NeutralCount,
				summary.TotalAmount-summary.GoodAmount-summary.BadAmount))

			if summary.TotalAmount > 0 {
				fmt.Printf("\n유죄 지출 비중: %.1f%%\n", summary.BadPercentage)
			}
			if summary.Improvement > 0 {
				fmt.Printf("지난달 대비 유죄 지출: %.1f%% 감소\n", summary.Improvement)
			} else if summary.Improvement < 0 {
				fmt.Printf("지난달 대비 유죄 지출: %.1f%% 증가\n", -summary.Improvement)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default current)")

	return cmd
}
