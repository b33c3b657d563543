package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/balance"
	"github.com/tourledger-dev/tourledger/internal/entry"
	"github.com/tourledger-dev/tourledger/internal/model"
)

func newListCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries newest-first with running balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := a.entries.List()
			if err != nil {
				return err
			}

			// Balances cover the whole ledger even when the display is
			// filtered to one month.
			balances := balance.Running(entries)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tCLIENT\tEVENT\tMEMO\tKRW BAL\tBB BAL\tKB BAL\tUSD BAL\tID")
			for _, e := range entry.SortForDisplay(entries) {
				if month != "" && e.Month() != month {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Date, e.Client, e.EventName, e.Memo,
					balances.At(model.CurrencyKRW, e.ID),
					balances.At(model.CurrencyBB, e.ID),
					balances.At(model.CurrencyKB, e.ID),
					balances.At(model.CurrencyUSD, e.ID),
					e.ID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only show entries of one YYYY-MM month")

	return cmd
}
