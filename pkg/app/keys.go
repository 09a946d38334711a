package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/copilot-face/pkg/state"
)

// stateKeys are the direct-pick keys, in sequence order.
var stateKeys = [...]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

// KeyMap is the full set of key bindings.
type KeyMap struct {
	Pick   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Select key.Binding
	Auto   key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys(stateKeys[:]...),
			key.WithHelp("1-0 - =", "pick state"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto cycle"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Auto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Prev, k.Next, k.Select},
		{k.Auto, k.Theme, k.Help, k.Quit},
	}
}

// StateForKey maps a direct-pick key to its state.
func StateForKey(msg tea.KeyMsg) (state.State, bool) {
	s := msg.String()
	for i, k := range stateKeys {
		if k == s {
			return state.Sequence()[i], true
		}
	}
	return state.Unknown, false
}

// KeyForState returns the direct-pick key of s, or "" for Unknown.
func KeyForState(s state.State) string {
	if !s.Valid() {
		return ""
	}
	return stateKeys[s]
}
