package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/models"
)

const (
	statusTimeout = 3 * time.Second
	titleWidth    = 40
	detailWidth   = 60
)

// ListModel shows the unlocked entries with a cursor and a detail line for
// the selected one.
type ListModel struct {
	ctx       context.Context
	vault     Vault
	clipboard ClipboardWriter

	items         []models.Entry
	idx           int
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	busy          bool
	status        string
	errMsg        string
}

func NewListModel(ctx context.Context, vault Vault, clipboard ClipboardWriter) *ListModel {
	return &ListModel{ctx: ctx, vault: vault, clipboard: clipboard}
}

// Init reloads the entries from the session.
func (m *ListModel) Init() tea.Cmd {
	m.reload()
	m.showConfirm = false
	m.pendingDelete = ""
	m.errMsg = ""
	return nil
}

func (m *ListModel) reload() {
	m.items = m.vault.Entries()
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ListModel) current() (models.Entry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Entry{}, false
	}
	return m.items[m.idx], true
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntryAddedResult:
		m.reload()
		if msg.Err == nil {
			m.idx = len(m.items) - 1
		}
		return m, nil

	case EntryDeletedResult:
		m.busy = false
		if msg.Err != nil {
			m.errMsg = app.MessageFor(msg.Err)
			return m, nil
		}
		m.reload()
		return m, m.setStatus("entry deleted")

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgClipboardUnavailable
			return m, nil
		}
		return m, m.setStatus("content copied to clipboard")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			id := m.pendingDelete
			m.pendingDelete = ""
			if id == "" {
				return m, nil
			}
			m.busy = true
			return m, m.cmdDelete(id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingDelete = ""
		}
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.errMsg = ""
		return m, navigate(pageAdd, nil)
	case key.Matches(msg, keys.delete):
		if e, ok := m.current(); ok {
			m.errMsg = ""
			m.showConfirm = true
			m.pendingDelete = e.ID
			m.confirm = confirmModel{title: e.Title}
		}
	case key.Matches(msg, keys.copy):
		if e, ok := m.current(); ok {
			return m, m.cmdCopy(e.Content)
		}
	case key.Matches(msg, keys.lock):
		m.vault.Lock()
		m.items = nil
		m.idx = 0
		return m, navigate(pageUnlock, vaultLockedMsg{reason: "vault locked"})
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("No entries yet, press n to add one\n")
	} else {
		for i, e := range m.items {
			cursor := "  "
			line := fitText(e.Title, titleWidth)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(fmt.Sprintf("%s%s\n", cursor, line))
		}

		if e, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(uiDivider)
			b.WriteString("\n")
			b.WriteString(e.Title)
			b.WriteString(": ")
			b.WriteString(fitText(firstLine(e.Content), detailWidth))
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\nsaving...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.showConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	page := renderPage(
		fmt.Sprintf("VAULT (%d)", len(m.items)),
		b.String(),
		"↑/↓: move  n: new  d: delete  c: copy  l: lock  q: quit",
	)
	return page
}

func (m *ListModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return EntryDeletedResult{ID: id, Err: m.vault.DeleteEntry(m.ctx, id)}
	}
}

func (m *ListModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.clipboard(text)}
	}
}

func (m *ListModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
