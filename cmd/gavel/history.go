package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/cli"
	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/stats"
)

func historyCmd() *cobra.Command {
	var (
		month  string
		recent int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List a month's expenses with their verdicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var expenses []model.Expense
			var heading string
			if recent > 0 {
				expenses, err = store.GetRecentExpenses(ctx, recent)
				heading = "최근 소비 내역"
			} else {
				if month == "" {
					month = stats.MonthKey(time.Now())
				}
				expenses, err = store.GetExpensesByMonth(ctx, month)
				heading = fmt.Sprintf("%s 소비 내역", month)
			}
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses recorded."))
				return nil
			}

			fmt.Println(cli.FormatTitle(heading))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("날짜"),
				cli.TableHeaderStyle.Render("분류"),
				cli.TableHeaderStyle.Render("금액"),
				cli.TableHeaderStyle.Render("판결"),
				cli.TableHeaderStyle.Render("메모"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 6),
				strings.Repeat("-", 10),
				strings.Repeat("-", 4),
				strings.Repeat("-", 12))

			for i := range expenses {
				e := &expenses[i]
				verdict := "—"
				if e.Judgment != nil {
					verdict = cli.VerdictStyle(e.Judgment.Verdict)(cli.VerdictLabel(e.Judgment.Verdict))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date, string(e.Category), cli.FormatWon(e.Amount), verdict, e.Memo)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to list (YYYY-MM, default current)")
	cmd.Flags().IntVar(&recent, "recent", 0, "list the N most recent expenses instead of a month")

	return cmd
}
