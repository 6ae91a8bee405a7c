// ABOUTME: Show command for viewing full entry content
// ABOUTME: Renders rich-text content as markdown in the terminal and records the open entry

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/config"
	"github.com/chroniclehq/chronicle/internal/content"
)

var showCmd = &cobra.Command{
	Use:     "show <entry-id>",
	Aliases: []string{"view"},
	Short:   "Show an entry",
	Long:    "Display the full content of a diary entry. Accepts a full ID or a unique prefix (min 6 chars).",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		entry, err := store.GetByIDOrPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to find entry: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Println(strings.Repeat("─", config.SeparatorWidth))
		fmt.Printf("%s\n\n", bold(entry.Title))
		fmt.Printf("%s %s\n", faint("Date:"), entry.Date.Format(config.DateFormatLong))
		fmt.Printf("%s %s\n", faint("Modified:"), entry.LastModified.Format(config.DateFormatLong))
		if entry.Folder != "" {
			fmt.Printf("%s %s\n", faint("Folder:"), cyan(entry.Folder))
		}
		if len(entry.Tags) > 0 {
			fmt.Printf("%s %s\n", faint("Tags:"), strings.Join(entry.Tags, ", "))
		}
		fmt.Println(strings.Repeat("─", config.SeparatorWidth))

		if entry.Content == "" {
			fmt.Println("\n(No content)")
		} else if raw {
			fmt.Printf("\n%s\n", entry.Content)
		} else {
			markdown := content.ToMarkdown(entry.Content)
			rendered, err := glamour.Render(markdown, "dark")
			if err != nil {
				// Fall back to plain markdown if rendering fails
				fmt.Printf("%s\n", faint("(markdown rendering unavailable, showing plain text)"))
				fmt.Printf("\n%s\n", markdown)
			} else {
				fmt.Print(rendered)
			}
		}
		fmt.Println()

		if err := journal.SetCurrent(entry.ID); err != nil {
			return fmt.Errorf("failed to record open entry: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("raw", false, "print stored content without markdown rendering")
}
