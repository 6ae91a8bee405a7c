// ABOUTME: Theme command for appearance preference toggles
// ABOUTME: Flips the glass theme and background toggles stored in settings

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/session"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change appearance preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := session.LoadPrefs(store)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		fmt.Printf("glass theme: %s\n", onOff(prefs.GlassTheme))
		fmt.Printf("background:  %s\n", onOff(prefs.BackgroundEnabled))
		return nil
	},
}

var themeGlassCmd = &cobra.Command{
	Use:   "glass",
	Short: "Toggle the glass theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := session.LoadPrefs(store)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		enabled, err := prefs.ToggleGlassTheme()
		if err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}
		fmt.Printf("glass theme: %s\n", onOff(enabled))
		return nil
	},
}

var themeBackgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Toggle the decorative background",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := session.LoadPrefs(store)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}
		enabled, err := prefs.ToggleBackground()
		if err != nil {
			return fmt.Errorf("failed to save preference: %w", err)
		}
		fmt.Printf("background: %s\n", onOff(enabled))
		return nil
	},
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeGlassCmd)
	themeCmd.AddCommand(themeBackgroundCmd)
}
