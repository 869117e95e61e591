package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote   key.Binding
	createNote key.Binding
	deleteNote key.Binding
	exportNote key.Binding
	refresh    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		createNote: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		deleteNote: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
		exportNote: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export"),
		),
		refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
	}
}
