// ABOUTME: Export command for writing backups and readable exports
// ABOUTME: Supports the restorable JSON snapshot plus markdown and text renderings

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the diary",
	Long: `Export the diary to a file or stdout.

The json format is the full backup snapshot (entries plus settings) and
is the only format that can be imported back. markdown and text are
readable one-way exports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputFile, _ := cmd.Flags().GetString("output")

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = backup.Export(store)
			if err != nil {
				return fmt.Errorf("failed to export backup: %w", err)
			}
		case "markdown", "md":
			data = backup.RenderMarkdown(journal.Entries())
		case "text", "txt":
			data = backup.RenderText(journal.Entries())
		default:
			return fmt.Errorf("unknown format %q (expected json, markdown, or text)", format)
		}

		if outputFile == "" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported %d entries to %s\n", journal.Len(), outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "json", "export format: json, markdown, text")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}
