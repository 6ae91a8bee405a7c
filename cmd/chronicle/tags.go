// ABOUTME: Tags command for surveying tags and folders in use
// ABOUTME: Aggregates the cached collection and prints counts

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags in use",
	Long:  "List every tag across the diary with the number of entries carrying it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		showFolders, _ := cmd.Flags().GetBool("folders")

		counts := make(map[string]int)
		for _, entry := range journal.Entries() {
			if showFolders {
				if entry.Folder != "" {
					counts[entry.Folder]++
				}
				continue
			}
			// Count each entry once per distinct tag
			seen := make(map[string]bool)
			for _, tag := range entry.Tags {
				if !seen[tag] {
					seen[tag] = true
					counts[tag]++
				}
			}
		}

		if len(counts) == 0 {
			if showFolders {
				fmt.Println("No folders in use")
			} else {
				fmt.Println("No tags in use")
			}
			return nil
		}

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		faint := color.New(color.Faint).SprintFunc()
		for _, name := range names {
			fmt.Printf("%s %s\n", name, faint(fmt.Sprintf("(%d)", counts[name])))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().Bool("folders", false, "list folders instead of tags")
}
