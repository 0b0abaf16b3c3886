package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Copy  key.Binding
	Paste key.Binding
	Save  key.Binding
	Axis  key.Binding
	Snap  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Paste, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Paste, k.Save},
		{k.Axis, k.Snap},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Paste: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "paste"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Axis: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "lock axis"),
	),
	Snap: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g/ctrl+drag", "snap"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func isQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, keys.Quit)
}
