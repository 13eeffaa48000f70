package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	tab      key.Binding
	space    key.Binding
	add      key.Binding
	del      key.Binding
	reset    key.Binding
	settings key.Binding
	move     key.Binding
	hide     key.Binding
	style    key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		space:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		add:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		del:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		settings: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "settings")),
		move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		hide:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "hide")),
		style:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "style")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.tab, k.space, k.add, k.del},
		{k.reset, k.settings, k.move, k.hide},
		{k.style, k.quit},
	}
}
