package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/session"
)

const (
	focusTitle = iota
	focusContent
)

// AddModel is the form for a new entry: a one-line title and a multi-line
// content area. ctrl+s saves, esc returns to the list.
type AddModel struct {
	ctx   context.Context
	vault Vault

	title      textinput.Model
	content    textarea.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewAddModel(ctx context.Context, vault Vault) *AddModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "content"
	content.CharLimit = 0
	content.SetWidth(60)
	content.SetHeight(6)
	content.ShowLineNumbers = false

	return &AddModel{
		ctx:     ctx,
		vault:   vault,
		title:   title,
		content: content,
	}
}

// Init clears the form and focuses the title.
func (m *AddModel) Init() tea.Cmd {
	m.title.SetValue("")
	m.content.SetValue("")
	m.errMsg = ""
	m.submitting = false
	m.setFocus(focusTitle)
	return textinput.Blink
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(EntryAddedResult); ok {
		m.submitting = false
		switch {
		case errors.Is(result.Err, session.ErrLocked):
			return m, navigate(pageUnlock, vaultLockedMsg{reason: app.MsgLocked})
		case result.Err != nil:
			m.errMsg = app.MessageFor(result.Err)
			return m, nil
		}
		return m, navigate(pageList, result)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageList, nil)
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.setFocus(1 - m.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter) && m.focus == focusTitle:
			m.setFocus(focusContent)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			title := m.title.Value()
			content := m.content.Value()
			if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
				m.errMsg = app.MessageFor(session.ErrValidation)
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAdd(title, content)
		}
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *AddModel) View() string {
	var b strings.Builder
	b.WriteString("Title\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nContent\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nsaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW ENTRY", b.String(), "tab: switch field  ctrl+s: save  esc: back")
}

func (m *AddModel) setFocus(focus int) {
	m.focus = focus
	if focus == focusTitle {
		m.title.Focus()
		m.content.Blur()
		return
	}
	m.title.Blur()
	m.content.Focus()
}

func (m *AddModel) cmdAdd(title, content string) tea.Cmd {
	return func() tea.Msg {
		entry, err := m.vault.AddEntry(m.ctx, title, content)
		return EntryAddedResult{Entry: entry, Err: err}
	}
}
