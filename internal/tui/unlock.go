// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/session"
)

// UnlockModel is the Bubble Tea model for the unlock screen. It renders a
// single masked password input and runs the unlock in a command so the
// spinner keeps moving while the key is derived.
type UnlockModel struct {
	ctx   context.Context
	vault Vault

	input      textinput.Model
	spinner    spinner.Model
	submitting bool
	errMsg     string
	notice     string
}

// NewUnlockModel creates an [UnlockModel] with a focused password input.
func NewUnlockModel(ctx context.Context, vault Vault) *UnlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UnlockModel{
		ctx:     ctx,
		vault:   vault,
		input:   passwordInput,
		spinner: s,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [UnlockResult]  clears submitting state; on success opens the list.
//   - vaultLockedMsg  shows why the vault was locked.
//   - enter           dispatches the async unlock command.
//   - esc             quits.
//
// All other key events are forwarded to the password input.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UnlockResult:
		m.submitting = false
		m.input.SetValue("")
		if msg.Err != nil {
			m.errMsg = app.MessageFor(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		return m, navigate(pageList, nil)

	case vaultLockedMsg:
		m.notice = msg.reason
		m.errMsg = ""
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			password := m.input.Value()
			if password == "" {
				m.errMsg = app.MessageFor(session.ErrEmptyPassword)
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdUnlock(password))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" unlocking...\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", b.String(), "enter: unlock  esc: quit")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	return func() tea.Msg {
		return UnlockResult{Err: m.vault.Unlock(m.ctx, password)}
	}
}
