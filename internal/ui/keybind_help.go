package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap adapts the leader hints for the current sequence and mode to
// help.KeyMap.
type KeyMap struct {
	registry *KeybindRegistry
	seq      string
	mode     AppMode
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap returns the hints that may follow the handler's buffered
// sequence in mode.
func NewKeyMap(h *KeyHandler, mode AppMode) KeyMap {
	return KeyMap{registry: h.Registry, seq: h.Sequence(), mode: mode}
}

// ShortHelp implements help.KeyMap. The last entry is always esc.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.seq, km.mode)
	if len(hints) == 0 {
		return nil
	}
	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc)))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp implements help.KeyMap as a single column.
func (km KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

// RenderKeybindHelp draws the transient help bar shown while a leader
// sequence is in progress.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || keyHandler.Registry == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	prefix := keyHandler.Sequence()
	if prefix == "" {
		prefix = LeaderSeq
	}
	return Styles.HelpBar.Render(Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
