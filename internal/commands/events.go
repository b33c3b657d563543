package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/event"
)

func newEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List distinct settlement groups",
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

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tEVENT\tMONTH")
			for _, info := range event.DistinctEvents(entries) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Key, info.DisplayName, info.Month)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			// Settlement reports whose entries are all gone.
			keys, err := a.settlements.Keys()
			if err != nil {
				return err
			}
			for _, k := range keys {
				key := event.ParseKey(k)
				if event.Status(key, entries, true) == event.StatusOrphaned {
					fmt.Fprintf(cmd.OutOrStdout(), "orphaned: %s\n", k)
				}
			}
			return nil
		},
	}
}
