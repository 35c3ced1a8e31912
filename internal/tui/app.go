package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-vault/internal/session"
	"github.com/MKhiriev/go-note-vault/models"
)

const lockCheckInterval = time.Second

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) sends the user back to the unlock page when the session locks
// 5) delegates all other messages to the active page
type RootModel struct {
	vault       Vault
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(vault Vault, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		vault:       vault,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleLockCheck()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "ctrl+b":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
		if r.vault.State() == session.StateUnlocked {
			r.vault.Touch()
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentName = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Sequence(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()

	case lockCheckMsg:
		next := scheduleLockCheck()
		if r.currentName != pageUnlock && r.vault.State() == session.StateLocked {
			return r, tea.Batch(next, navigate(pageUnlock, vaultLockedMsg{reason: "vault locked after inactivity"}))
		}
		return r, next
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("go-note-vault", "", "")
	}
	return r.current.View()
}

// QuitByUser reports whether the program ended with ctrl+c rather than q.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func scheduleLockCheck() tea.Cmd {
	return tea.Tick(lockCheckInterval, func(time.Time) tea.Msg { return lockCheckMsg{} })
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
