//go:build !linux && !darwin && !windows

package browser

import "os/exec"

func findPlatformBrowser(address string) (string, []string) {
	if _, err := exec.LookPath("xdg-open"); err == nil {
		return "xdg-open", []string{address}
	}
	return "", nil
}
