package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

// settleFields maps CLI field names to the report fields that accept
// staged edits. Committing a rate also recomputes the matching Baht
// fixed price inside the settlement service.
var settleFields = map[string]settlement.Field{
	"name":         settlement.FieldName,
	"krw-income":   settlement.FieldFixedKRWIncome,
	"rate-income":  settlement.FieldRateIncome,
	"baht-income":  settlement.FieldFixedBahtIncome,
	"krw-expense":  settlement.FieldFixedKRWExpense,
	"rate-expense": settlement.FieldRateExpense,
	"baht-expense": settlement.FieldFixedBahtExpense,
}

func newSettleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Inspect and edit per-event settlement reports",
	}
	cmd.AddCommand(newSettleShowCommand())
	cmd.AddCommand(newSettleSetCommand())
	cmd.AddCommand(newSettleItemCommand())
	return cmd
}

func newSettleShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show the computed settlement summary for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			key := event.ParseKey(args[0])
			sum, err := a.settlements.Summary(key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Event:\t%s (%s)\n", sum.Name, key.Month)
			fmt.Fprintf(tw, "KRW sums:\tincome %s\texpense %s\n", sum.KRWIncomeSum, sum.KRWExpenseSum)
			fmt.Fprintf(tw, "Fixed KRW:\tincome %s\texpense %s\n", sum.DisplayFixedKRWIncome, sum.DisplayFixedKRWExpense)
			fmt.Fprintf(tw, "Baht from entries:\tincome %s\texpense %s\n", sum.BahtIncomeFromEntries, sum.BahtExpenseFromEntries)
			fmt.Fprintf(tw, "Baht fixed:\tincome %s\texpense %s\n", sum.BahtFixedIncome, sum.BahtFixedExpense)
			fmt.Fprintf(tw, "Additional items:\tincome %s\texpense %s\n", sum.AdditionalIncome, sum.AdditionalExpense)
			fmt.Fprintf(tw, "Total:\tincome %s\texpense %s\tprofit %s\n", sum.TotalIncome, sum.TotalExpense, sum.TotalProfit)
			fmt.Fprintf(tw, "Guide:\tincome %s\texpense %s\tprofit %s\n", sum.Guide.Income, sum.Guide.Expense, sum.Guide.Profit)
			return tw.Flush()
		},
	}
}

func newSettleSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <field> <value>",
		Short: "Stage and commit one settlement field edit",
		Long: "Fields: name, krw-income, rate-income, baht-income, krw-expense, rate-expense, baht-expense.\n" +
			"Setting a krw field to 0 clears the override and falls back to the ledger sum.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, ok := settleFields[args[1]]
			if !ok {
				return fmt.Errorf("unknown field %q", args[1])
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			key := event.ParseKey(args[0])
			if err := a.settlements.EnsureDefaults(key, key.Name); err != nil {
				return err
			}

			a.settlements.StageEdit(key, field, args[2])
			return a.settlements.CommitEdit(key, field)
		},
	}
}

func newSettleItemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage a report's additional income/expense items",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <key>",
		Short: "Append a blank additional item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			key := event.ParseKey(args[0])
			if err := a.settlements.EnsureDefaults(key, key.Name); err != nil {
				return err
			}
			itemID, err := a.settlements.AddItem(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %s\n", itemID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <key> <item-id>",
		Short: "Delete an additional item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.settlements.RemoveItem(event.ParseKey(args[0]), args[1])
		},
	})

	var name, income, expense string
	setCmd := &cobra.Command{
		Use:   "set <key> <item-id>",
		Short: "Edit an additional item in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			patch := settlement.ItemPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("income") {
				amt := model.AmountFromString(income)
				patch.Income = &amt
			}
			if cmd.Flags().Changed("expense") {
				amt := model.AmountFromString(expense)
				patch.Expense = &amt
			}
			return a.settlements.UpdateItem(event.ParseKey(args[0]), args[1], patch)
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "item name")
	setCmd.Flags().StringVar(&income, "income", "", "item income")
	setCmd.Flags().StringVar(&expense, "expense", "", "item expense")
	cmd.AddCommand(setCmd)

	return cmd
}
