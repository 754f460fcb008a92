package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the app-level bindings. Field navigation belongs to the huh
// form and is described in the help overlay.
type keyMap struct {
	Terms key.Binding
	Reset key.Binding
	Save  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Terms: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "compare terms")),
		Reset: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save as default")),
		Help:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Terms, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Terms, k.Reset, k.Save},
		{k.Help, k.Quit},
	}
}
