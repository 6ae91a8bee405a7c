// ABOUTME: New command for creating diary entries
// ABOUTME: Reads content from a flag, a file, or stdin and stores the entry

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new entry",
	Long:  "Create a new diary entry with the given title. Content comes from --content, --file, or stdin with --stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		if title == "" {
			return fmt.Errorf("title must not be empty")
		}

		contentFlag, _ := cmd.Flags().GetString("content")
		file, _ := cmd.Flags().GetString("file")
		fromStdin, _ := cmd.Flags().GetBool("stdin")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		folder, _ := cmd.Flags().GetString("folder")

		body := contentFlag
		switch {
		case file != "":
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read content file: %w", err)
			}
			body = string(data)
		case fromStdin:
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			body = string(data)
		}

		entry, err := journal.Add(title, body, tags, folder)
		if err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
		if err := journal.SetCurrent(entry.ID); err != nil {
			return fmt.Errorf("failed to record open entry: %w", err)
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("Created %s %s\n", entry.Title, faint(entry.ID[:8]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("content", "c", "", "entry content (HTML or plain text)")
	newCmd.Flags().StringP("file", "f", "", "read content from a file")
	newCmd.Flags().Bool("stdin", false, "read content from stdin")
	newCmd.Flags().StringSliceP("tag", "t", nil, "tag the entry (repeatable)")
	newCmd.Flags().String("folder", "", "place the entry in a folder")

	newCmd.MarkFlagsMutuallyExclusive("content", "file", "stdin")
}
