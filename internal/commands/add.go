package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/entry"
	"github.com/tourledger-dev/tourledger/internal/event"
	"github.com/tourledger-dev/tourledger/internal/model"
)

func newAddCommand() *cobra.Command {
	var params struct {
		date, client, eventName, detail, memo   string
		krwIn, krwOut, bbIn, bbOut, kbIn, kbOut string
		usdIn, usdOut                           string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			e, err := a.entries.Add(entry.AddParams{
				Date:        params.date,
				Client:      params.client,
				EventName:   params.eventName,
				EventDetail: params.detail,
				Memo:        params.memo,
				KRW:         pair(params.krwIn, params.krwOut),
				BB:          pair(params.bbIn, params.bbOut),
				KB:          pair(params.kbIn, params.kbOut),
				USD:         pair(params.usdIn, params.usdOut),
			})
			if err != nil {
				return err
			}
			if e == nil {
				return fmt.Errorf("a date is required")
			}

			// Seed the satellite state for the entry's event, if it has
			// one. These are separate writes on separate documents.
			if event.Groupable(*e) {
				key := event.KeyOf(*e)
				if err := a.settlements.EnsureDefaults(key, e.EventName); err != nil {
					return err
				}
				if err := a.profits.Sync(); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s (%s)\n", e.ID, e.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.date, "date", "", "transaction date, YYYY-MM-DD or YYYYMMDD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&params.client, "client", "", "client name")
	cmd.Flags().StringVar(&params.eventName, "event", "", "event name")
	cmd.Flags().StringVar(&params.detail, "detail", "", "event detail")
	cmd.Flags().StringVar(&params.memo, "memo", "", "free-text memo")
	cmd.Flags().StringVar(&params.krwIn, "krw-in", "0", "KRW income")
	cmd.Flags().StringVar(&params.krwOut, "krw-out", "0", "KRW expense")
	cmd.Flags().StringVar(&params.bbIn, "bb-in", "0", "BB income")
	cmd.Flags().StringVar(&params.bbOut, "bb-out", "0", "BB expense")
	cmd.Flags().StringVar(&params.kbIn, "kb-in", "0", "KB income")
	cmd.Flags().StringVar(&params.kbOut, "kb-out", "0", "KB expense")
	cmd.Flags().StringVar(&params.usdIn, "usd-in", "0", "USD income")
	cmd.Flags().StringVar(&params.usdOut, "usd-out", "0", "USD expense")

	return cmd
}

// pair coerces flag text to amounts; unparsable input reads as zero.
func pair(income, expense string) model.Pair {
	return model.Pair{
		Income:  model.AmountFromString(income),
		Expense: model.AmountFromString(expense),
	}
}
