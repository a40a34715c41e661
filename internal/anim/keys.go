package anim

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/san-kum/probeviz/internal/viz"
)

type keymap struct {
	Pause   key.Binding
	Restart key.Binding
	Record  key.Binding
}

var keys = keymap{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Record: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "record gif"),
	),
}

func bindings() []key.Binding {
	quit := viz.Keys.Quit
	quit.SetHelp("q", "quit")
	return []key.Binding{keys.Pause, keys.Restart, keys.Record, viz.Keys.Theme, quit}
}
