// ABOUTME: Current command for reporting the last-opened entry
// ABOUTME: Restores session position recorded by show and new

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the last-opened entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := journal.Current()
		if entry == nil {
			fmt.Println("No entry open")
			return nil
		}
		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("%s %s\n", faint(entry.ID[:8]), entry.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
