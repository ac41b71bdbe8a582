package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/muxdeck/internal/config"
	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts of the TUI
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyBindingRow is one configurable action with its effective keys
type keyBindingRow struct {
	Custom  config.KeyBindingValue `json:"custom,omitempty"`
	Default []string               `json:"default"`
	Help    string                 `json:"help"`
	Name    string                 `json:"-"`
}

func keyBindingRows(custom config.KeyBindingsConfig) []keyBindingRow {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	rows := make([]keyBindingRow, 0, len(names))
	for _, name := range names {
		row := keyBindingRow{Default: defaults[name], Name: name}
		if def := ui.GetKeyDefinition(name); def != nil {
			row.Help = def.Help
		}
		if keys := custom[name]; len(keys) > 0 {
			row.Custom = keys
		}
		rows = append(rows, row)
	}
	return rows
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	rows := keyBindingRows(custom)

	if s.Format == "json" {
		byName := make(map[string]keyBindingRow, len(rows))
		for _, row := range rows {
			byName[row.Name] = row
		}
		data, err := json.MarshalIndent(byName, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsFilePath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, row := range rows {
		custom := "-"
		if len(row.Custom) > 0 {
			custom = strings.Join(row.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, strings.Join(row.Default, ", "), custom, row.Help)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'muxdeck settings keys set <name> <value>' to customize.")
	return nil
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., kill, help, zoom_in)"`
	Value string `arg:"" help:"Key binding (e.g., x, ctrl+k, or comma-separated for multiple: up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues splits a comma-separated binding, dropping blanks
func parseKeyValues(value string) []string {
	var result []string
	for _, p := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
