package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds all TUI key bindings. Letters stay free for the
// instruction input; chords and function keys drive the app.
type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Help   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Clear  key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit task"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "help"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll diagram up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll diagram down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "clear input"),
	),
}

// matchKey checks if a key message matches a key.Binding.
func matchKey(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}

// keyBarText renders the context-sensitive key hint string.
func keyBarText(submitting bool) string {
	if submitting {
		return keyStyle.Render("PgUp/Dn") + keyDescStyle.Render(":scroll") + "  " +
			keyStyle.Render("ctrl+c") + keyDescStyle.Render(":quit")
	}
	return keyStyle.Render("enter") + keyDescStyle.Render(":submit") + "  " +
		keyStyle.Render("PgUp/Dn") + keyDescStyle.Render(":scroll") + "  " +
		keyStyle.Render("ctrl+u") + keyDescStyle.Render(":clear") + "  " +
		keyStyle.Render("ctrl+g") + keyDescStyle.Render(":help") + "  " +
		keyStyle.Render("ctrl+c") + keyDescStyle.Render(":quit")
}
