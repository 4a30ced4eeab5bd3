package tui

import (
	key "github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Reset    key.Binding
	Coast    key.Binding
	Borders  key.Binding
	Cities   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PanLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "0"),
			key.WithHelp("r", "reset view"),
		),
		Coast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coastlines"),
		),
		Borders: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "borders"),
		),
		Cities: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cities"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpBindings is the footer help line, in display order.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.PanLeft, k.PanRight, k.PanUp, k.PanDown,
		k.ZoomIn, k.ZoomOut, k.Reset,
		k.Coast, k.Borders, k.Cities,
		k.Help, k.Quit,
	}
}
