// ABOUTME: Delete command for removing diary entries
// ABOUTME: Resolves ID or prefix and asks for confirmation unless forced

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Long:    "Permanently delete a diary entry. Accepts a full ID or a unique prefix.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		entry, err := store.GetByIDOrPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to find entry: %w", err)
		}

		if !force {
			fmt.Printf("Delete %q? This cannot be undone. [y/N] ", entry.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted")
				return nil
			}
		}

		if err := journal.Delete(entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("Deleted %s %s\n", entry.Title, faint(entry.ID[:8]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
}
