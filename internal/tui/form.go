package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velikanov/groupsync/models"
)

type composeKind int

const (
	composeDiscussion composeKind = iota
	composeComment
)

type composeModel struct {
	kind  composeKind
	title textinput.Model
	body  textarea.Model
	focus int
}

func newComposeModel(kind composeKind) composeModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 50

	body := textarea.New()
	body.Placeholder = "Write something..."
	body.SetWidth(50)
	body.SetHeight(5)

	m := composeModel{kind: kind, title: title, body: body}
	if kind == composeComment {
		m.body.Focus()
	} else {
		m.title.Focus()
	}
	return m
}

// fieldCount reports how many focusable inputs the form has.
func (m composeModel) fieldCount() int {
	if m.kind == composeComment {
		return 1
	}
	return 2
}

func (m composeModel) update(msg tea.Msg) (composeModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.kind == composeDiscussion {
		m.title, cmd = m.title.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.body, cmd = m.body.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m composeModel) nextField() composeModel {
	m.focus = (m.focus + 1) % m.fieldCount()
	m.title.Blur()
	m.body.Blur()
	if m.kind == composeDiscussion && m.focus == 0 {
		m.title.Focus()
	} else {
		m.body.Focus()
	}
	return m
}

func (m composeModel) toDiscussion(groupID string) models.Discussion {
	return models.Discussion{
		GroupID: groupID,
		Title:   m.title.Value(),
		Body:    m.body.Value(),
	}
}

func (m composeModel) toComment(discussionID string) models.Comment {
	return models.Comment{
		DiscussionID: discussionID,
		Body:         m.body.Value(),
	}
}

func (m composeModel) View() string {
	var out string
	if m.kind == composeDiscussion {
		out = headerStyle.Render("New discussion") + "\n\n"
		out += "Title\n" + m.title.View() + "\n\n"
	} else {
		out = headerStyle.Render("New comment") + "\n\n"
	}
	out += "Body\n" + m.body.View() + "\n\n"
	out += mutedStyle.Render("tab next field  ctrl+s save  esc cancel")
	return out
}
