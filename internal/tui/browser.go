package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/groupsync/internal/client"
	"github.com/velikanov/groupsync/internal/feed"
	"github.com/velikanov/groupsync/models"
)

type screen int

const (
	screenDiscussions screen = iota
	screenComments
	screenCompose
)

type browserModel struct {
	ctx     context.Context
	app     *client.App
	groupID string

	scr     screen
	prevScr screen

	discussions *feed.Session[models.Discussion]
	comments    *feed.Session[models.Comment]
	current     models.Discussion

	idx  int
	cIdx int

	compose composeModel

	spin    spinner.Model
	loading bool
	errMsg  string
	status  string
}

func newBrowserModel(ctx context.Context, app *client.App, groupID string) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:         ctx,
		app:         app,
		groupID:     groupID,
		discussions: app.Discussions(groupID, 0),
		spin:        s,
		loading:     true,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoadDiscussions())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.loading = false
		m.errMsg = errText(msg.err)
		m.clampCursor()
		return m, nil

	case commentsLoadedMsg:
		m.loading = false
		m.errMsg = errText(msg.err)
		if msg.err == nil {
			m.scr = screenComments
			m.cIdx = 0
		}
		return m, nil

	case draftSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.status = "saved"
		m.scr = m.prevScr
		return m, nil

	case itemDeletedMsg:
		m.loading = false
		m.errMsg = errText(msg.err)
		if msg.err == nil {
			m.status = "deleted"
		}
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.scr == screenCompose {
		var cmd tea.Cmd
		m.compose, cmd = m.compose.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.scr == screenCompose {
		switch msg.String() {
		case "esc":
			m.scr = m.prevScr
			return m, nil
		case "tab":
			m.compose = m.compose.nextField()
			return m, nil
		case "ctrl+s":
			m.loading = true
			m.status = ""
			if m.compose.kind == composeDiscussion {
				return m, m.cmdCreateDiscussion(m.compose.toDiscussion(m.groupID))
			}
			return m, m.cmdCreateComment(m.compose.toComment(m.current.ID.Value()))
		}
		var cmd tea.Cmd
		m.compose, cmd = m.compose.update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "n":
		m.loading = true
		return m, m.cmdLoadMore(feed.Forward)
	case "p":
		m.loading = true
		return m, m.cmdLoadMore(feed.Backward)

	case "c":
		m.prevScr = m.scr
		if m.scr == screenComments {
			m.compose = newComposeModel(composeComment)
		} else {
			m.compose = newComposeModel(composeDiscussion)
		}
		m.scr = screenCompose
		return m, nil

	case "d":
		return m.deleteSelected()

	case "enter":
		if m.scr == screenDiscussions {
			if d, ok := m.selectedDiscussion(); ok {
				m.current = d
				m.comments = m.app.Comments(d.ID.Value(), 0)
				m.loading = true
				return m, m.cmdLoadComments()
			}
		}
		return m, nil

	case "esc":
		if m.scr == screenComments {
			m.scr = screenDiscussions
			if m.comments != nil {
				m.comments.Close()
				m.comments = nil
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *browserModel) moveCursor(delta int) {
	if m.scr == screenComments {
		m.cIdx += delta
	} else {
		m.idx += delta
	}
	m.clampCursor()
}

func (m *browserModel) clampCursor() {
	clamp := func(idx, n int) int {
		if idx >= n {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		return idx
	}
	m.idx = clamp(m.idx, len(m.discussions.Items()))
	if m.comments != nil {
		m.cIdx = clamp(m.cIdx, len(m.comments.Items()))
	}
}

func (m browserModel) selectedDiscussion() (models.Discussion, bool) {
	items := m.discussions.Items()
	if len(items) == 0 || m.idx >= len(items) {
		return models.Discussion{}, false
	}
	return items[m.idx], true
}

func (m browserModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.scr == screenComments {
		items := m.comments.Items()
		if len(items) == 0 || m.cIdx >= len(items) {
			return m, nil
		}
		m.loading = true
		return m, m.cmdDeleteComment(items[m.cIdx].ID)
	}

	d, ok := m.selectedDiscussion()
	if !ok {
		return m, nil
	}
	m.loading = true
	return m, m.cmdDeleteDiscussion(d.ID)
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m browserModel) cmdLoadDiscussions() tea.Cmd {
	session := m.discussions
	ctx := m.ctx
	return func() tea.Msg {
		return pageLoadedMsg{err: session.LoadInitial(ctx)}
	}
}

func (m browserModel) cmdLoadMore(direction feed.Direction) tea.Cmd {
	ctx := m.ctx

	if m.scr == screenComments {
		session := m.comments
		return func() tea.Msg {
			if direction == feed.Forward {
				return pageLoadedMsg{err: session.LoadNext(ctx)}
			}
			return pageLoadedMsg{err: session.LoadPrevious(ctx)}
		}
	}

	session := m.discussions
	return func() tea.Msg {
		if direction == feed.Forward {
			return pageLoadedMsg{err: session.LoadNext(ctx)}
		}
		return pageLoadedMsg{err: session.LoadPrevious(ctx)}
	}
}

func (m browserModel) cmdLoadComments() tea.Cmd {
	session := m.comments
	ctx := m.ctx
	return func() tea.Msg {
		return commentsLoadedMsg{err: session.LoadInitial(ctx)}
	}
}

func (m browserModel) cmdCreateDiscussion(draft models.Discussion) tea.Cmd {
	session := m.discussions
	ctx := m.ctx
	return func() tea.Msg {
		_, err := session.Create(ctx, draft)
		return draftSavedMsg{err: err}
	}
}

func (m browserModel) cmdCreateComment(draft models.Comment) tea.Cmd {
	session := m.comments
	ctx := m.ctx
	return func() tea.Msg {
		_, err := session.Create(ctx, draft)
		return draftSavedMsg{err: err}
	}
}

func (m browserModel) cmdDeleteDiscussion(id models.Identifier) tea.Cmd {
	session := m.discussions
	ctx := m.ctx
	return func() tea.Msg {
		return itemDeletedMsg{err: session.Delete(ctx, id)}
	}
}

func (m browserModel) cmdDeleteComment(id models.Identifier) tea.Cmd {
	session := m.comments
	ctx := m.ctx
	return func() tea.Msg {
		return itemDeletedMsg{err: session.Delete(ctx, id)}
	}
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m browserModel) View() string {
	if m.scr == screenCompose {
		return m.compose.View()
	}
	if m.scr == screenComments {
		return m.viewComments()
	}
	return m.viewDiscussions()
}

func (m browserModel) viewDiscussions() string {
	out := headerStyle.Render("Discussions of "+m.groupID) + m.spinnerSuffix() + "\n\n"

	items := m.discussions.Items()
	if m.loading && len(items) == 0 {
		out += "Loading...\n"
	} else if len(items) == 0 {
		out += "No discussions yet\n"
	} else {
		for i, d := range items {
			line := fmt.Sprintf("%s  (%d comments)", d.Title, d.CommentCount)
			if d.ID.Pending() {
				line += mutedStyle.Render("  ~pending")
			}
			out += m.renderLine(line, i == m.idx)
		}
	}

	if m.discussions.HasNextPage() {
		out += mutedStyle.Render("... more below") + "\n"
	}

	out += m.footer("enter open  c new  d delete  n/p page  q quit")
	return out
}

func (m browserModel) viewComments() string {
	out := headerStyle.Render(m.current.Title) + m.spinnerSuffix() + "\n\n"

	items := m.comments.Items()
	if m.loading && len(items) == 0 {
		out += "Loading...\n"
	} else if len(items) == 0 {
		out += "No comments yet\n"
	} else {
		for i, c := range items {
			line := fmt.Sprintf("%s: %s", c.AuthorID, c.Body)
			if c.ID.Pending() {
				line += mutedStyle.Render("  ~pending")
			}
			out += m.renderLine(line, i == m.cIdx)
		}
	}

	if m.comments != nil && m.comments.HasNextPage() {
		out += mutedStyle.Render("... more below") + "\n"
	}

	out += m.footer("c reply  d delete  n/p page  esc back  q quit")
	return out
}

func (m browserModel) renderLine(line string, selected bool) string {
	if selected {
		return cursorStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m browserModel) spinnerSuffix() string {
	if m.loading {
		return "  " + m.spin.View()
	}
	return ""
}

func (m browserModel) footer(hints string) string {
	out := ""
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	out += "\n" + mutedStyle.Render(hints)
	return out
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
