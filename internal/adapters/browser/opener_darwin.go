//go:build darwin

package browser

func findPlatformBrowser(address string) (string, []string) {
	return "open", []string{address}
}
