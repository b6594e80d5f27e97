// Package tui implements the terminal UI of the groupsync client.
//
// It renders one group's discussions, lets the user page through them,
// open a thread's comments and submit or delete items. All reads and
// writes go through feed sessions, so optimistic creates and rollbacks
// show up in the list exactly as the session resolves them.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/groupsync/internal/client"
	"github.com/velikanov/groupsync/internal/logger"
)

type TUI struct {
	app    *client.App
	logger *logger.Logger
}

func New(app *client.App, log *logger.Logger) (*TUI, error) {
	return &TUI{app: app, logger: log}, nil
}

// Run drives the browser for one group until the user quits.
func (t *TUI) Run(ctx context.Context, groupID string) error {
	model := newBrowserModel(ctx, t.app, groupID)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(browserModel); ok {
		m.discussions.Close()
		if m.comments != nil {
			m.comments.Close()
		}
	}
	return nil
}
