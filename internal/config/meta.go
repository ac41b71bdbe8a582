package config

import (
	"reflect"
	"strings"

	"github.com/renato0307/muxdeck/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"refresh": "r",
			"help":    []string{"H", "?"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Return boolean value directly (not pointer)
			return fieldName == "debug" || fieldName == "surface_probe"
		case reflect.Int:
			switch fieldName {
			case "attach_pending_ttl":
				return DefaultAttachPendingTTL
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "refresh_interval":
				return DefaultRefreshInterval
			case "request_timeout":
				return DefaultRequestTimeout
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "backend_url":
			return DefaultBackendURL
		case "browser":
			return "firefox"
		case "channel_path":
			return "/ws"
		case "cookie":
			return "session=..."
		case "db_path":
			return "~/.muxdeck/state.db"
		case "otel_endpoint":
			return "http://localhost:4318"
		case "profile":
			return "default"
		default:
			return "example"
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			if fieldName == "otel_headers" {
				return []string{"authorization=Bearer token"}
			}
			return []string{"example1", "example2"}
		}
	}

	return nil
}
