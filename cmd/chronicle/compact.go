// ABOUTME: Compact command for storage maintenance
// ABOUTME: Runs VACUUM against the entry database to reclaim space

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Compact the database",
	Long:  "Reclaim unused space in the entry database. Useful after deleting many entries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Compact(); err != nil {
			return fmt.Errorf("failed to compact database: %w", err)
		}
		fmt.Println("Database compacted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compactCmd)
}
