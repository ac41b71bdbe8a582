package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ports"
)

// Opener opens files in the user's editor and waits for it to exit
type Opener struct {
	lookPath func(string) (string, error)
	run      func(*exec.Cmd) error
}

// Verify interface compliance at compile time
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		lookPath: exec.LookPath,
		run:      (*exec.Cmd).Run,
	}
}

// Open edits path with the first editor found.
// Priority: cliEditor → $MUXDECK_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}

	argv := o.findEditor(cliEditor)
	if len(argv) == 0 {
		return fmt.Errorf("no suitable editor found. Set --editor, $MUXDECK_EDITOR, $VISUAL, or $EDITOR")
	}

	logging.Logger.Info("Opening editor", "editor", argv[0], "path", path)

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := o.run(cmd); err != nil {
		return fmt.Errorf("editor %s failed: %w", argv[0], err)
	}
	return nil
}

// findEditor returns the editor command split into argv, e.g. "code --wait"
func (o *Opener) findEditor(cliEditor string) []string {
	for _, candidate := range []string{
		cliEditor,
		os.Getenv("MUXDECK_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if argv := strings.Fields(candidate); len(argv) > 0 {
			return argv
		}
	}

	for _, argv := range defaultEditors {
		if _, err := o.lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
