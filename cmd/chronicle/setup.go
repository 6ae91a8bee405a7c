// ABOUTME: Cobra command for interactive chronicle configuration.
// ABOUTME: Launches a bubbletea TUI wizard to pick the data directory and theme.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chroniclehq/chronicle/internal/config"
	"github.com/chroniclehq/chronicle/internal/session"
	"github.com/chroniclehq/chronicle/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure chronicle",
	Long:  "Interactive wizard to configure the data directory and appearance.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	theme := "off"
	prefs, err := session.LoadPrefs(store)
	if err == nil && prefs.GlassTheme {
		theme = "on"
	}

	model := tui.NewSetupModel(cfg.DataDir, theme)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup canceled.")
		return nil
	}

	newDataDir, newTheme := final.Result()
	cfg.DataDir = newDataDir

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	// The theme preference lives in the settings store at the chosen
	// data directory, which may differ from the one opened at startup.
	prefStore, err := cfg.OpenStorage()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer prefStore.Close()
	if err := prefStore.SetSetting(session.SettingGlassTheme, fmt.Sprintf("%t", newTheme == "on")); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}

	fmt.Printf("Config saved to %s\n", config.GetConfigPath())
	return nil
}
