//go:build linux

package browser

import (
	"os/exec"
)

var defaultBrowsers = []string{
	"xdg-open",
	"sensible-browser",
	"x-www-browser",
	"firefox",
	"google-chrome",
	"chromium",
}

func findPlatformBrowser(address string) (string, []string) {
	for _, browser := range defaultBrowsers {
		if _, err := exec.LookPath(browser); err == nil {
			return browser, []string{address}
		}
	}
	return "", nil
}
