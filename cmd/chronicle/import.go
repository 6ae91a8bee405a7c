// ABOUTME: Import command for restoring the diary from a backup snapshot
// ABOUTME: Destructive replace with confirmation; reports what the restore applied

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/backup"
)

var importCmd = &cobra.Command{
	Use:     "import <backup-file>",
	Aliases: []string{"restore"},
	Short:   "Restore the diary from a backup",
	Long: `Restore the diary from a JSON backup snapshot.

Importing REPLACES the current diary: every existing entry is removed
and the snapshot's entries take their place, in a single transaction.
A failed import leaves the current diary untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup file: %w", err)
		}

		if !force {
			count, err := store.Count()
			if err != nil {
				return fmt.Errorf("failed to count entries: %w", err)
			}
			if count > 0 {
				fmt.Printf("Importing replaces all %d existing entries. Continue? [y/N] ", count)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Aborted")
					return nil
				}
			}
		}

		result, err := backup.Import(store, data)
		if err != nil {
			return fmt.Errorf("failed to import backup: %w", err)
		}
		if err := journal.Refresh(); err != nil {
			return fmt.Errorf("failed to refresh entries: %w", err)
		}

		fmt.Printf("Imported %d entries\n", result.EntriesImported)
		if result.SettingsApplied > 0 {
			fmt.Printf("Applied %d settings\n", result.SettingsApplied)
		}
		if len(result.SettingsFailed) > 0 {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Printf("%s %s\n", yellow("Skipped settings:"), strings.Join(result.SettingsFailed, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
}
