package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Theme key.Binding
	Help  key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "close all figures"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "right", "l", "tab"),
		key.WithHelp("n", "next figure"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "left", "h", "shift+tab"),
		key.WithHelp("p", "previous figure"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "cycle theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

func (k Keymap) Bindings() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Theme, k.Help, k.Quit}
}

// ShortHelp renders bindings on one line.
func ShortHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return KeyHint.Render(strings.Join(parts, "  "))
}

// FullHelp renders one binding per line with all of its keys.
func FullHelp(bindings []key.Binding) string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("%-24s %s", strings.Join(b.Keys(), "/"), b.Help().Desc))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
