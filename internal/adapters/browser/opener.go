package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"

	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// Opener implements ports.BrowserOpener
type Opener struct {
	start func(name string, args ...string) error
}

// Verify interface compliance at compile time
var _ ports.BrowserOpener = (*Opener)(nil)

// NewOpener creates a new browser opener
func NewOpener() *Opener {
	return &Opener{start: startDetached}
}

// Open opens the terminal address in a browser
// Priority: cliBrowser → $MUXDECK_BROWSER → $BROWSER → platform defaults
func (o *Opener) Open(address string, cliBrowser string) error {
	if address == "" {
		return fmt.Errorf("no address provided")
	}

	u, err := url.Parse(address)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("not a web address: %q", address)
	}

	browser, args := findBrowser(address, cliBrowser)
	if browser == "" {
		return fmt.Errorf("no suitable browser found. Set --browser flag, $MUXDECK_BROWSER, or $BROWSER")
	}

	logging.Logger.Info("Opening browser", "browser", browser, "address", address)

	if err := o.start(browser, args...); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()
	return nil
}

func findBrowser(address string, cliBrowser string) (string, []string) {
	// 1. CLI flag takes precedence
	if cliBrowser != "" {
		return cliBrowser, []string{address}
	}

	// 2. Check MUXDECK_BROWSER
	if browser := os.Getenv("MUXDECK_BROWSER"); browser != "" {
		return browser, []string{address}
	}

	// 3. Check BROWSER
	if browser := os.Getenv("BROWSER"); browser != "" {
		return browser, []string{address}
	}

	// 4. Platform-specific defaults
	return findPlatformBrowser(address)
}
