package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/profit"
)

func newProfitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Monthly profit rollup across settlements",
	}
	cmd.AddCommand(newProfitShowCommand())
	cmd.AddCommand(newProfitToggleCommand("enable", true))
	cmd.AddCommand(newProfitToggleCommand("disable", false))
	cmd.AddCommand(newProfitOverrideCommand())
	cmd.AddCommand(newProfitExpenseCommand())
	return cmd
}

func newProfitShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the period profit total",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.profits.Sync(); err != nil {
				return err
			}
			t, err := a.profits.Total()
			if err != nil {
				return err
			}
			state, err := a.profits.State()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EVENT\tMONTH\tAMOUNT\tSOURCE")
			for _, line := range t.Lines {
				source := "settlement"
				if line.Overridden {
					source = "override"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", line.EventName, line.Month, line.Amount, source)
			}
			fmt.Fprintln(tw)
			for _, e := range state.Expenses {
				fmt.Fprintf(tw, "expense\t%s\t%s\t\n", e.Label, e.Amount)
			}
			fmt.Fprintf(tw, "TOTAL\tincome %s\texpense %s\tprofit %s\n",
				t.TotalIncome, t.TotalExpense, t.TotalProfit)
			return tw.Flush()
		},
	}
}

func newProfitToggleCommand(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <key>",
		Short: fmt.Sprintf("%s an event's contribution to the total", use),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.profits.Sync(); err != nil {
				return err
			}
			return a.profits.SetEnabled(event.ParseKey(args[0]), enabled)
		},
	}
}

func newProfitOverrideCommand() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "override <key> [amount]",
		Short: "Replace an event's computed profit with a manual amount",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.profits.Sync(); err != nil {
				return err
			}

			key := event.ParseKey(args[0])
			if clear {
				return a.profits.SetOverride(key, nil)
			}
			if len(args) < 2 {
				return fmt.Errorf("an amount (or --clear) is required")
			}
			amt := model.AmountFromString(args[1])
			return a.profits.SetOverride(key, &amt)
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "drop the override and use the computed profit")

	return cmd
}

func newProfitExpenseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage the manual period expense list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append a blank expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			expenseID, err := a.profits.AddExpense()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added expense %s\n", expenseID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <expense-id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.profits.RemoveExpense(args[0])
		},
	})

	var label, amount string
	setCmd := &cobra.Command{
		Use:   "set <expense-id>",
		Short: "Edit an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			patch := profit.ExpensePatch{}
			if cmd.Flags().Changed("label") {
				patch.Label = &label
			}
			if err := a.profits.UpdateExpense(args[0], patch); err != nil {
				return err
			}
			// Amount edits go through the staged-draft path, like the
			// table number fields they model.
			if cmd.Flags().Changed("amount") {
				a.profits.StageExpenseEdit(args[0], amount)
				return a.profits.CommitExpenseEdit(args[0])
			}
			return nil
		},
	}
	setCmd.Flags().StringVar(&label, "label", "", "expense label")
	setCmd.Flags().StringVar(&amount, "amount", "", "expense amount")
	cmd.AddCommand(setCmd)

	return cmd
}
