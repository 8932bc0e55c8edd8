package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the flashcard TUI.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Activate key.Binding // Click the focused button.
	Submit   key.Binding // Submit the form from an input.
	Close    key.Binding // Close the form.
	Add      key.Binding // Open an empty form.
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding

	// Quit works everywhere except in an input, ForceQuit everywhere.
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab/↑", "previous"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add card"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("C-d", "page down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Next, keys.Activate, keys.Add, keys.Close, keys.Help, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Next, keys.Previous, keys.PageUp, keys.PageDown},
		{keys.Activate, keys.Submit, keys.Add, keys.Close},
		{keys.Help, keys.Quit, keys.ForceQuit},
	}
}
