package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/muxdeck/internal/logging"
	"github.com/renato0307/muxdeck/internal/ui"
)

const releaseTimeout = 5 * time.Second

// connection ties a model to the resources of its SSH connection
type connection struct {
	id        string
	model     *ui.Model
	once      sync.Once
	release   func()
	startTime time.Time
}

// close saves the model state and releases the connection once
func (c *connection) close() {
	c.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		c.model.Shutdown(ctx)
		if c.release != nil {
			c.release()
		}
		logging.Logger.Info("SSH session ended",
			"session_id", c.id,
			"duration", time.Since(c.startTime).String())
	})
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, release, err := s.newModel(sess.Context(), sess.User())
	if err != nil {
		logging.Logger.Error("Failed to set up SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	conn := &connection{
		id:        sessionID,
		model:     model,
		release:   release,
		startTime: time.Now(),
	}
	// The program is stopped by the middleware when the session context ends
	go func() {
		<-sess.Context().Done()
		conn.close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n\nPress any key to disconnect.\n", e.err)
}
