package cmd

import (
	"fmt"
	"os"

	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ui"
)

// SettingsEditCmd opens settings.json in an editor
type SettingsEditCmd struct {
	Editor string `help:"Editor command (default: $MUXDECK_EDITOR, $VISUAL, $EDITOR)"`
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsFilePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Logger.Info("Creating empty settings file", "path", path)
		if err := config.SaveSettings(&config.Settings{}); err != nil {
			return err
		}
	}

	if err := cli.Container.Editor.Open(path, s.Editor); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("settings were saved but are not valid: %w", err)
	}
	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("settings were saved but key bindings are not valid: %w", err)
	}

	fmt.Printf("Settings saved: %s\n", path)
	return nil
}
