package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	mark       key.Binding
	up         key.Binding
	down       key.Binding
	rename     key.Binding
	script     key.Binding
	del        key.Binding
	export     key.Binding
	reset      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	mark: key.NewBinding(
		key.WithKeys("enter", "m"),
		key.WithHelp("enter", "mark section"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "select up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "select down"),
	),
	rename: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rename"),
	),
	script: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "script"),
	),
	del: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	export: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "export"),
	),
	reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset all"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
