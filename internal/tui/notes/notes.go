// Package notes implements the interactive note browser with a live
// markdown preview pane.
package notes

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fnotes/internal/cache"
	"fnotes/internal/export"
	"fnotes/internal/note"
	"fnotes/internal/state"
)

const previewCacheSize = 64

type NoteListModel struct {
	list     list.Model
	cache    *cache.Cache
	keys     *listKeyMap
	state    *state.State
	preview  string
	width    int
	height   int
	selected *note.Note
	quitting bool
}

// Run opens the browser and blocks until it is closed. The returned note is
// the one picked for editing; ok is false when the browser was quit without
// a selection.
func Run(s *state.State) (note.Note, bool, error) {
	m := NewNoteListModel(s)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return note.Note{}, false, err
	}

	if m.selected == nil {
		return note.Note{}, false, nil
	}
	return *m.selected, true, nil
}

func NewNoteListModel(s *state.State) *NoteListModel {
	lkeys := newListKeyMap()

	delegate := list.NewDefaultDelegate()
	l := list.New(toListItems(s.Store.All()), delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = titleStyle

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.openNote,
			lkeys.createNote,
			lkeys.deleteNote,
			lkeys.exportNote,
			lkeys.refresh,
		}
	}

	return &NoteListModel{
		state: s,
		cache: cache.New(previewCacheSize),
		list:  l,
		keys:  lkeys,
	}
}

func (m *NoteListModel) Init() tea.Cmd {
	return nil
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.openNote):
			if item, ok := m.list.SelectedItem().(ListItem); ok {
				n := item.Note()
				m.selected = &n
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.createNote):
			return m, m.createNote()

		case key.Matches(msg, m.keys.deleteNote):
			return m, m.deleteNote()

		case key.Matches(msg, m.keys.exportNote):
			return m, m.exportNote()

		case key.Matches(msg, m.keys.refresh):
			return m, m.refresh()
		}
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl

	m.handlePreview()
	return m, cmd
}

func (m *NoteListModel) createNote() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := m.state.Store.Create(ctx, note.DefaultTitle, nil)
	if err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error creating note: %v", err)),
		)
	}

	m.selected = &n
	m.quitting = true
	return tea.Quit
}

func (m *NoteListModel) deleteNote() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Local removal stands even when the server call fails.
	err := m.state.Store.Delete(ctx, item.Note().ID())
	m.list.SetItems(toListItems(m.state.Store.All()))
	if err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Deleted locally; server delete failed: %v", err)),
		)
	}

	return m.list.NewStatusMessage(statusStyle("Deleted " + item.Title()))
}

func (m *NoteListModel) exportNote() tea.Cmd {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := m.state.Exporter.Export(ctx, item.Note(), export.FormatMarkdown)
	if err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error exporting note: %v", err)),
		)
	}

	return m.list.NewStatusMessage(statusStyle(res.Notice))
}

func (m *NoteListModel) refresh() tea.Cmd {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.state.Store.Fetch(ctx); err != nil {
		return m.list.NewStatusMessage(
			statusStyle(fmt.Sprintf("Error refreshing notes: %v", err)),
		)
	}

	return m.list.SetItems(toListItems(m.state.Store.All()))
}

// handlePreview renders the selected note's markdown preview, caching by
// note identity and modification time so unchanged notes render once.
func (m *NoteListModel) handlePreview() {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		m.preview = ""
		return
	}

	n := item.Note()
	key := fmt.Sprintf("%s@%d", n.ID(), n.UpdatedAt.UnixMilli())
	if cached, ok := m.cache.Get(key); ok {
		m.preview = cached
		return
	}

	rendered := export.Preview(n, m.width/2)
	m.cache.Put(key, rendered)
	m.preview = rendered
}

func (m *NoteListModel) View() string {
	if m.quitting {
		return ""
	}

	listPane := listStyle.Width(m.width / 2).Render(m.list.View())
	previewPane := previewStyle.
		Height(m.list.Height()).
		MaxHeight(m.list.Height()).
		Render(m.preview)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	return appStyle.Render(layout)
}
