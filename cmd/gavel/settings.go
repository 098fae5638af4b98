package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/cli"
	"github.com/go-one-2/money/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage your budgeting configuration",
		Long:  `Show and update monthly income, savings goal, essential categories, and spending priorities.`,
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())
	cmd.AddCommand(toggleEssentialCmd())
	cmd.AddCommand(togglePriorityCmd())
	cmd.AddCommand(initSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			essentials := make([]string, 0, len(settings.EssentialCategories))
			for _, c := range settings.EssentialCategories {
				essentials = append(essentials, string(c))
			}
			priorities := make([]string, 0, len(settings.Priorities))
			for _, p := range settings.Priorities {
				priorities = append(priorities, string(p))
			}

			content := fmt.Sprintf("월 수입: %s\n저축 목표: %s\n필수 카테고리: %s\n소비 우선순위: %s\n온보딩 완료: %v",
				cli.FormatWon(settings.MonthlyIncome),
				cli.FormatWon(settings.SavingsGoal),
				strings.Join(essentials, ", "),
				strings.Join(priorities, ", "),
				settings.OnboardingCompleted)
			fmt.Println(cli.RenderBox("설정", content))
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		income  int64
		savings int64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update income and savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("income") {
				settings.MonthlyIncome = income
			}
			if cmd.Flags().Changed("savings-goal") {
				settings.SavingsGoal = savings
			}

			if err := store.SaveUserSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Settings updated."))
			return nil
		},
	}

	cmd.Flags().Int64Var(&income, "income", 0, "after-tax monthly income")
	cmd.Flags().Int64Var(&savings, "savings-goal", 0, "monthly savings goal")

	return cmd
}

func toggleEssentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "essential <category>",
		Short: "Toggle a category's essential status",
		Long:  `Essential categories are unconditionally exempt from judgment.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category := model.Category(args[0])
			if !category.IsValid() {
				return fmt.Errorf("unknown category %q (valid: %v)", args[0], model.Categories)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			settings.ToggleEssential(category)
			if err := store.SaveUserSettings(ctx, settings); err != nil {
				return err
			}

			if settings.IsEssential(category) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is now essential.", category)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is no longer essential.", category)))
			}
			return nil
		},
	}
}

func togglePriorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priority <priority>",
		Short: "Toggle a spending priority (at most 3)",
		Long: `Select up to three spending priorities. A matching priority relaxes
judgment; the practical/essentials-only priority tightens it instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			priority := model.Priority(args[0])
			if !priority.IsValid() {
				return fmt.Errorf("unknown priority %q (valid: %v)", args[0], model.Priorities)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			if !settings.TogglePriority(priority) {
				return fmt.Errorf("at most %d priorities may be selected; remove one first", model.MaxPriorities)
			}
			if err := store.SaveUserSettings(ctx, settings); err != nil {
				return err
			}

			if settings.HasPriority(priority) {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Priority %s selected.", priority)))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Priority %s removed.", priority)))
			}
			return nil
		},
	}
}

func initSettingsCmd() *cobra.Command {
	var (
		income  int64
		savings int64
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Complete initial setup",
		Long:  `Set income and savings goal and mark onboarding as completed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if income <= 0 {
				return fmt.Errorf("--income must be positive")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			settings.MonthlyIncome = income
			if cmd.Flags().Changed("savings-goal") {
				settings.SavingsGoal = savings
			}
			settings.OnboardingCompleted = true

			if err := store.SaveUserSettings(ctx, settings); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Onboarding complete. Record your first expense with 'gavel add'."))
			return nil
		},
	}

	cmd.Flags().Int64Var(&income, "income", 0, "after-tax monthly income (required)")
	cmd.Flags().Int64Var(&savings, "savings-goal", 0, "monthly savings goal")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}
