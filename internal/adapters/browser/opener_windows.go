//go:build windows

package browser

func findPlatformBrowser(address string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", address}
}
