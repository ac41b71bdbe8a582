package ui

import (
	"fmt"

	"github.com/renato0307/muxdeck/internal/theme"
	"github.com/renato0307/muxdeck/internal/version"
)

// renderHeader renders the app name, with build info in dev mode, and the tagline.
// A non-empty subtitle is rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("muxdeck")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version,
			commit,
			version.Date,
			version.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader is the header of every Dialog. Forms never call it
// directly; wrap them in NewDialog instead.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle) + "\n"
}
