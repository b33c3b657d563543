package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tourledger-dev/tourledger/internal/config"
	"github.com/tourledger-dev/tourledger/internal/docstore"
)

func newInitCommand() *cobra.Command {
	var name string
	var backend string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, name, backend)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	cmd.Flags().StringVar(&backend, "backend", "file", "storage backend (file or sqlite)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, backend string) error {
	if !docstore.Backend(backend).IsValid() {
		return fmt.Errorf("unknown storage backend %q", backend)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	cfg := config.Default(name, dir)
	cfg.Storage.Backend = backend
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return err
	}

	// Touch the store so the data directory (or database) exists.
	store, err := docstore.Open(docstore.Backend(backend), cfg.Storage.Dir, cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger in %s (backend: %s)\n", dir, backend)
	return nil
}
