// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and opens the journal store per invocation

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/config"
	"github.com/chroniclehq/chronicle/internal/session"
	"github.com/chroniclehq/chronicle/internal/storage"
)

var (
	dataDir string
	store   storage.Store
	journal *session.Journal
)

var rootCmd = &cobra.Command{
	Use:   "chronicle",
	Short: "Personal journal with local-first storage",
	Long: `chronicle is a personal journal that lives entirely on your machine.

Write rich-text entries, organize them with tags and folders, search
your history, and carry everything between machines as a single
backup file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		journal, err = session.Open(store)
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("failed to open journal: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			if err := store.Close(); err != nil {
				return fmt.Errorf("failed to close storage: %w", err)
			}
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: ~/.local/share/chronicle)")
}
