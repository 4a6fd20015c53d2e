package core

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// KeyMap holds the command bindings of the editor. Keys not bound here fall
// through to editing and navigation.
type KeyMap struct {
	Save    key.Binding
	Quit    key.Binding
	Find    key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Paste   key.Binding
}

// DefaultKeyMap returns the kilo bindings plus clipboard copy and paste.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl-S", "save")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl-Q", "quit")),
		Find:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("Ctrl-F", "find")),
		Refresh: key.NewBinding(key.WithKeys("ctrl+l", "esc")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl-C", "copy line")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("Ctrl-V", "paste")),
	}
}

// ShortHelp lists the bindings shown in the startup message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.Find}
}

// HelpMessage renders ShortHelp as "HELP: Ctrl-S = save | ...".
func (k KeyMap) HelpMessage() string {
	var parts []string
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" = "+h.Desc)
	}
	return "HELP: " + strings.Join(parts, " | ")
}
