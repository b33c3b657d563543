// Package commands is the CLI surface over the ledger services. Commands
// never compute totals or balances themselves; all arithmetic lives in
// the balance, settlement and profit packages.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/buildinfo"
	"github.com/tourledger-dev/tourledger/internal/config"
	"github.com/tourledger-dev/tourledger/internal/docstore"
	"github.com/tourledger-dev/tourledger/internal/entry"
	"github.com/tourledger-dev/tourledger/internal/profit"
	"github.com/tourledger-dev/tourledger/internal/settlement"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tourledger",
		Short:   "Multi-currency tour ledger and settlement tool",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "ledger directory (holds tourledger.yaml)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newClearCommand())
	rootCmd.AddCommand(newEventsCommand())
	rootCmd.AddCommand(newSettleCommand())
	rootCmd.AddCommand(newGuideCommand())
	rootCmd.AddCommand(newProfitCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// app bundles the opened store and services for one command invocation.
type app struct {
	cfg         *config.Config
	store       docstore.Store
	entries     *entry.Service
	settlements *settlement.Service
	profits     *profit.Service
}

func openApp(cmd *cobra.Command) (*app, error) {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no %s in %s (run 'tourledger init' first)", config.FileName, dir)
		}
		return nil, err
	}

	store, err := docstore.Open(docstore.Backend(cfg.Storage.Backend), cfg.Storage.Dir, cfg.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}

	entries := entry.NewService(store)
	settlements := settlement.NewService(store, entries)
	profits := profit.NewService(store, entries, settlements)

	return &app{
		cfg:         cfg,
		store:       store,
		entries:     entries,
		settlements: settlements,
		profits:     profits,
	}, nil
}

func (a *app) close() {
	a.store.Close()
}
