package editor

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	up           key.Binding
	down         key.Binding
	editRow      key.Binding
	editTitle    key.Binding
	toggleCheck  key.Binding
	addText      key.Binding
	addCheckbox  key.Binding
	addBullet    key.Binding
	addImage     key.Binding
	duplicateRow key.Binding
	deleteRow    key.Binding
	submitInput  key.Binding
	exitInput    key.Binding
	quit         key.Binding
}

func newEditorKeyMap() *editorKeyMap {
	return &editorKeyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		editRow: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "edit row"),
		),
		editTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit title"),
		),
		toggleCheck: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle checkbox"),
		),
		addText: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add text row"),
		),
		addCheckbox: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add checkbox row"),
		),
		addBullet: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "add bullet row"),
		),
		addImage: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "add image row"),
		),
		duplicateRow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "duplicate row"),
		),
		deleteRow: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete row"),
		),
		submitInput: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		exitInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "save and quit"),
		),
	}
}
