package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			// Settlement reports and profit records for the entry's
			// event are kept; they orphan rather than cascade.
			if err := a.entries.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry and all settlement/profit state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.entries.Clear(); err != nil {
				return err
			}
			if err := a.settlements.Reset(); err != nil {
				return err
			}
			if err := a.profits.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all ledger data")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the full reset")

	return cmd
}
