// ABOUTME: List command for viewing diary entries with filtering options
// ABOUTME: Displays entries with ID, title, tags, and date using color formatting

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/config"
	"github.com/chroniclehq/chronicle/internal/query"
	"github.com/chroniclehq/chronicle/internal/timeutil"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List diary entries",
	Long:    "List diary entries with optional filtering by search text, tags, folder, and date",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		folder, _ := cmd.Flags().GetString("folder")
		today, _ := cmd.Flags().GetBool("today")
		yesterday, _ := cmd.Flags().GetBool("yesterday")
		week, _ := cmd.Flags().GetBool("week")
		month, _ := cmd.Flags().GetBool("month")
		limit, _ := cmd.Flags().GetInt("limit")

		filters := query.Filters{
			Search: search,
			Tags:   tags,
			Folder: folder,
		}

		// Smart view flags translate to an inclusive date range
		period := ""
		switch {
		case today:
			period = "today"
		case yesterday:
			period = "yesterday"
		case week:
			period = "week"
		case month:
			period = "month"
		}
		if period != "" {
			start, end, ok := timeutil.PeriodRange(period)
			if !ok {
				return fmt.Errorf("unknown period %q", period)
			}
			filters.DateRange = &query.DateRange{Start: start, End: end}
		}

		entries := journal.Search(filters)
		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}

		// Newest first
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Date.After(entries[j].Date)
		})
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		for _, entry := range entries {
			idShort := entry.ID
			if len(idShort) > config.DisplayIDLength {
				idShort = idShort[:config.DisplayIDLength]
			}
			fmt.Print(faint(idShort))
			fmt.Print(" ")

			fmt.Print(entry.Title)

			if entry.Folder != "" {
				fmt.Printf(" %s", cyan("["+entry.Folder+"]"))
			}
			if len(entry.Tags) > 0 {
				fmt.Printf(" %s", faint("#"+strings.Join(entry.Tags, " #")))
			}

			fmt.Printf(" %s", faint(entry.Date.Format(config.DateFormatShort)))
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("search", "s", "", "match text in title or content")
	listCmd.Flags().StringSliceP("tag", "t", nil, "filter by tag (repeatable, entries match any)")
	listCmd.Flags().String("folder", "", "filter by folder")
	listCmd.Flags().Bool("today", false, "show only today's entries")
	listCmd.Flags().Bool("yesterday", false, "show only yesterday's entries")
	listCmd.Flags().Bool("week", false, "show only this week's entries")
	listCmd.Flags().Bool("month", false, "show only this month's entries")
	listCmd.Flags().IntP("limit", "n", config.DefaultListLimit, "max entries to show (0 = all)")

	listCmd.MarkFlagsMutuallyExclusive("today", "yesterday", "week", "month")
}
