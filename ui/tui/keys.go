package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	ToggleLeft  key.Binding
	ToggleRight key.Binding
	ToggleDark  key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	JumpPage    key.Binding
	SwitchView  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	ToggleLeft: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "toggle sidebar"),
	),
	ToggleRight: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "toggle right panel"),
	),
	ToggleDark: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle dark mode"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next page"),
	),
	FirstPage: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first page"),
	),
	LastPage: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last page"),
	),
	JumpPage: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump to page"),
	),
	SwitchView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "dashboard/orders"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.ToggleLeft, k.ToggleRight, k.ToggleDark, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchView, k.ToggleLeft, k.ToggleRight, k.ToggleDark},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.JumpPage},
		{k.Help, k.Quit},
	}
}
