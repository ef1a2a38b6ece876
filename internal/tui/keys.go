package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Pane    key.Binding
	Select  key.Binding
	Toggle  key.Binding
	NewList key.Binding
	NewTask key.Binding
	Clear   key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pane:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select list")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle task")),
		NewList: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list")),
		NewTask: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		Delete:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete list")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy markdown")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pane, k.Select, k.Toggle, k.NewList, k.NewTask, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pane, k.Select},
		{k.Toggle, k.NewList, k.NewTask, k.Clear},
		{k.Delete, k.Copy, k.Help, k.Quit},
	}
}

// formKeyMap is the footer help while a form has focus.
type formKeyMap struct{ keys keyMap }

func (f formKeyMap) ShortHelp() []key.Binding { return []key.Binding{f.keys.Submit, f.keys.Cancel} }

func (f formKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }
