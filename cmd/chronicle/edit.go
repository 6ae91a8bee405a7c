// ABOUTME: Edit command for partial updates to existing entries
// ABOUTME: Applies only the fields given on the command line and bumps the modification time

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/session"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Edit an entry",
	Long:  "Update the title, content, tags, or folder of an existing entry. Only the given flags change; everything else is preserved.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := store.GetByIDOrPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to find entry: %w", err)
		}

		var update session.Update

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			if title == "" {
				return fmt.Errorf("title must not be empty")
			}
			update.Title = &title
		}
		if cmd.Flags().Changed("content") {
			content, _ := cmd.Flags().GetString("content")
			update.Content = &content
		}
		if cmd.Flags().Changed("file") {
			file, _ := cmd.Flags().GetString("file")
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read content file: %w", err)
			}
			body := string(data)
			update.Content = &body
		}
		if fromStdin, _ := cmd.Flags().GetBool("stdin"); fromStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			body := string(data)
			update.Content = &body
		}
		if cmd.Flags().Changed("tag") {
			tags, _ := cmd.Flags().GetStringSlice("tag")
			update.Tags = &tags
		}
		if cmd.Flags().Changed("folder") {
			folder, _ := cmd.Flags().GetString("folder")
			update.Folder = &folder
		}

		if update.Title == nil && update.Content == nil && update.Tags == nil && update.Folder == nil {
			return fmt.Errorf("nothing to change: pass at least one of --title, --content, --file, --stdin, --tag, --folder")
		}

		updated, err := journal.Update(entry.ID, update)
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("Updated %s %s\n", updated.Title, faint(updated.ID[:8]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().StringP("content", "c", "", "new content (HTML or plain text)")
	editCmd.Flags().StringP("file", "f", "", "read new content from a file")
	editCmd.Flags().Bool("stdin", false, "read new content from stdin")
	editCmd.Flags().StringSliceP("tag", "t", nil, "replace the tag list (repeatable)")
	editCmd.Flags().String("folder", "", "move the entry to a folder (empty to clear)")

	editCmd.MarkFlagsMutuallyExclusive("content", "file", "stdin")
}
