package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

func newGuideCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Edit an event's guide sub-ledger",
	}
	cmd.AddCommand(newGuideSetCommand())
	cmd.AddCommand(newGuideOptionCommand())
	return cmd
}

func newGuideSetCommand() *cobra.Command {
	var fields struct {
		tourFee, optionSales, otherIncome string
		eventCost, optionCost, dailyFee   string
		commission, otherPayment          string
	}

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Update guide sub-ledger fields",
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

			patch := settlement.GuidePatch{}
			set := func(flag, text string, dst **model.Amount) {
				if cmd.Flags().Changed(flag) {
					amt := model.AmountFromString(text)
					*dst = &amt
				}
			}
			set("tour-fee", fields.tourFee, &patch.TourFee)
			set("option-sales", fields.optionSales, &patch.OptionSales)
			set("other-income", fields.otherIncome, &patch.OtherIncome)
			set("event-cost", fields.eventCost, &patch.EventCost)
			set("option-cost", fields.optionCost, &patch.OptionCost)
			set("daily-fee", fields.dailyFee, &patch.GuideDailyFee)
			set("commission", fields.commission, &patch.GuideCommission)
			set("other-payment", fields.otherPayment, &patch.OtherPayment)

			return a.settlements.UpdateGuide(key, patch)
		},
	}

	cmd.Flags().StringVar(&fields.tourFee, "tour-fee", "", "tour fee income")
	cmd.Flags().StringVar(&fields.optionSales, "option-sales", "", "option sales income")
	cmd.Flags().StringVar(&fields.otherIncome, "other-income", "", "other income")
	cmd.Flags().StringVar(&fields.eventCost, "event-cost", "", "event cost")
	cmd.Flags().StringVar(&fields.optionCost, "option-cost", "", "option cost")
	cmd.Flags().StringVar(&fields.dailyFee, "daily-fee", "", "guide daily fee")
	cmd.Flags().StringVar(&fields.commission, "commission", "", "guide commission")
	cmd.Flags().StringVar(&fields.otherPayment, "other-payment", "", "other payment")

	return cmd
}

func newGuideOptionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "option",
		Short: "Manage guide option sale lines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <key>",
		Short: "Append a blank guide option",
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
			optionID, err := a.settlements.AddGuideOption(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added option %s\n", optionID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <key> <option-id>",
		Short: "Delete a guide option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return a.settlements.RemoveGuideOption(event.ParseKey(args[0]), args[1])
		},
	})

	var name, sale, cost, vendor string
	setCmd := &cobra.Command{
		Use:   "set <key> <option-id>",
		Short: "Edit a guide option in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			patch := settlement.GuideOptionPatch{}
			if cmd.Flags().Changed("name") {
				patch.OptionName = &name
			}
			if cmd.Flags().Changed("sale") {
				amt := model.AmountFromString(sale)
				patch.SalePrice = &amt
			}
			if cmd.Flags().Changed("cost") {
				amt := model.AmountFromString(cost)
				patch.CostPrice = &amt
			}
			if cmd.Flags().Changed("vendor") {
				patch.Vendor = &vendor
			}
			return a.settlements.UpdateGuideOption(event.ParseKey(args[0]), args[1], patch)
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "option name")
	setCmd.Flags().StringVar(&sale, "sale", "", "sale price")
	setCmd.Flags().StringVar(&cost, "cost", "", "cost price")
	setCmd.Flags().StringVar(&vendor, "vendor", "", "vendor")
	cmd.AddCommand(setCmd)

	return cmd
}
