package numberinput

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the stepper and commit bindings of a number input. Plain
// editing keys are handled by the underlying text input.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
	Commit    key.Binding
	Copy      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "increment")),
		Decrement: key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "decrement")),
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy value")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Commit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement},
		{k.Commit, k.Copy},
	}
}
