package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg clears the bottom line if nothing newer replaced it
type clearStatusMsg struct {
	generation int
}

// ErrorManager owns the bottom line of the screen: an error or a
// confirmation notice, never both. Each message clears itself after the
// delay unless a newer one took its place.
type ErrorManager struct {
	currentError    error
	notice          string
	generation      int
	errorClearDelay time.Duration
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError replaces whatever is shown with err and schedules its removal
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.notice = ""
	return em.scheduleClear()
}

// SetNotice replaces whatever is shown with a confirmation
func (em *ErrorManager) SetNotice(text string) tea.Cmd {
	em.currentError = nil
	em.notice = text
	return em.scheduleClear()
}

// ClearError clears both the error and the notice
func (em *ErrorManager) ClearError() {
	em.currentError = nil
	em.notice = ""
	em.generation++
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// Notice returns the current confirmation, empty when an error is shown
func (em *ErrorManager) Notice() string {
	return em.notice
}

// handleClear applies a clear message. Stale messages are ignored.
func (em *ErrorManager) handleClear(msg clearStatusMsg) {
	if msg.generation != em.generation {
		return
	}
	em.currentError = nil
	em.notice = ""
}

func (em *ErrorManager) scheduleClear() tea.Cmd {
	em.generation++
	if em.errorClearDelay <= 0 {
		return nil
	}
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{generation: generation}
	})
}
