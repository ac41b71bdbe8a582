package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/muxdeck/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the private collection of all tips, populated by newTip().
// Key maps are built per SSH connection, so access is locked.
var (
	tips   []Tip
	tipsMu sync.Mutex
)

// newTip registers a tip with format string and keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to zoom in", "+")
func newTip(format string, keys ...string) string {
	tipsMu.Lock()
	if !hasTip(format) {
		tips = append(tips, Tip{Format: format, Keys: keys})
	}
	tipsMu.Unlock()
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

func hasTip(format string) bool {
	for _, t := range tips {
		if t.Format == format {
			return true
		}
	}
	return false
}

// GetTips returns all registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	return append([]Tip(nil), tips...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var result strings.Builder
	result.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		result.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			result.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return result.String()
}

// KeyWithTip wraps a key.Binding with an optional tip for the empty state
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}
