package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// confirmModel is the y/n box drawn under the list before an entry is
// deleted.
type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\n%s yes    %s no",
		fitText(m.title, titleWidth), firstKey(keys.yes), firstKey(keys.no)))
}

func firstKey(b key.Binding) string {
	if ks := b.Keys(); len(ks) > 0 {
		return ks[0]
	}
	return ""
}
