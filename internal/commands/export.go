package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/export"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <ledger|month|settlement|profit> [arg]",
		Short: "Export CSV for spreadsheets",
		Long: "Scopes:\n" +
			"  ledger               all entries with running balances\n" +
			"  month <YYYY-MM>      one month's entries\n" +
			"  settlement <key>     one settlement report\n" +
			"  profit               the period profit rollup",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			entries, err := a.entries.List()
			if err != nil {
				return err
			}

			switch args[0] {
			case "ledger":
				return export.Ledger(w, entries)

			case "month":
				if len(args) < 2 {
					return fmt.Errorf("month export needs a YYYY-MM argument")
				}
				return export.Month(w, entries, args[1])

			case "settlement":
				if len(args) < 2 {
					return fmt.Errorf("settlement export needs an event key argument")
				}
				key := event.ParseKey(args[1])
				sum, err := a.settlements.Summary(key)
				if err != nil {
					return err
				}
				report, _, err := a.settlements.Report(key)
				if err != nil {
					return err
				}
				return export.Settlement(w, sum, report, event.EntriesForKey(entries, key))

			case "profit":
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
				return export.Profit(w, t, state)

			default:
				return fmt.Errorf("unknown export scope %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")

	return cmd
}
