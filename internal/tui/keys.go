package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	regenerate key.Binding
	copy       key.Binding
	more       key.Binding
	less       key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	regenerate: key.NewBinding(key.WithKeys("g")),
	copy:       key.NewBinding(key.WithKeys("c")),
	more:       key.NewBinding(key.WithKeys("+", "=")),
	less:       key.NewBinding(key.WithKeys("-")),
}
