package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit     key.Binding
	Tasks    key.Binding
	Remember key.Binding
	Add      key.Binding
	Clear    key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Up       key.Binding
	Down     key.Binding

	Commit key.Binding
	Cancel key.Binding
	Erase  key.Binding
	Abort  key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tasks: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "todo"),
	),
	Remember: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remember"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear done"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("bksp", "delete"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),

	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("bksp", "erase"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// browsingHelp and entryHelp expose the bindings of one mode to help.Model.
type browsingHelp struct{ keyMap }

func (k browsingHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Add, k.Clear, k.Quit}
}

func (k browsingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tasks, k.Remember, k.Add, k.Clear},
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Quit},
	}
}

type entryHelp struct{ keyMap }

func (k entryHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Erase, k.Abort}
}

func (k entryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) forMode(mode Mode) help.KeyMap {
	if mode == ModeTextEntry {
		return entryHelp{k}
	}
	return browsingHelp{k}
}
