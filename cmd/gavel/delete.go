package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <expense-id>",
		Short: "Delete a recorded expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteExpense(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Expense deleted."))
			return nil
		},
	}
}
