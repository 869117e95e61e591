// Package editor implements the interactive row editor for a single note.
// Edits are applied to a local draft immediately and persisted in the
// background by the autosave coordinator.
package editor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fnotes/internal/autosave"
	"fnotes/internal/note"
	"fnotes/internal/state"
)

const statusTickInterval = 500 * time.Millisecond

type inputMode int

const (
	modeBrowse inputMode = iota
	modeTitle
	modeRow
)

// draft is shared between the model and the coordinator's save goroutine,
// so all access goes through the mutex.
type draft struct {
	mu    sync.Mutex
	title string
	rows  []note.Row
}

func (d *draft) set(title string, rows []note.Row) {
	d.mu.Lock()
	d.title = title
	d.rows = rows
	d.mu.Unlock()
}

func (d *draft) snapshot() autosave.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	rows := make([]note.Row, len(d.rows))
	copy(rows, d.rows)
	return autosave.Snapshot{Title: d.title, Rows: rows}
}

type statusTickMsg time.Time

type Model struct {
	state  *state.State
	keys   *editorKeyMap
	noteID string

	draft *draft
	saver *autosave.Coordinator

	input  textinput.Model
	mode   inputMode
	cursor int

	width    int
	height   int
	quitting bool
	closeErr error
}

// Run opens the editor for the given note and blocks until it is closed.
// Pending edits are flushed before the program exits; a failed flush is
// reported after the alternate screen is torn down.
func Run(s *state.State, n note.Note) error {
	m := NewModel(s, n, s.AutosaveInterval())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if m.closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: final save failed: %v\n", m.closeErr)
	}

	return nil
}

func NewModel(s *state.State, n note.Note, interval time.Duration) *Model {
	d := &draft{}
	d.set(n.Title, n.Rows)

	id := n.ID()
	saver := autosave.New(
		interval,
		d.snapshot,
		func(ctx context.Context, snap autosave.Snapshot) error {
			_, err := s.Store.Save(ctx, id, snap.Title, snap.Rows)
			return err
		},
		nil,
		s.Log,
	)

	in := textinput.New()
	in.CharLimit = 512

	return &Model{
		state:  s,
		keys:   newEditorKeyMap(),
		noteID: id,
		draft:  d,
		saver:  saver,
		input:  in,
	}
}

func (m *Model) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, statusTick()

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.handleInputUpdate(msg)
		}
		return m.handleBrowseUpdate(msg)
	}

	return m, nil
}

func (m *Model) handleBrowseUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		m.closeErr = m.saver.Close(ctx)
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.editTitle):
		m.mode = modeTitle
		m.input.SetValue(m.title())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.editRow):
		rows := m.rows()
		if m.cursor >= len(rows) {
			break
		}
		row := rows[m.cursor]
		if row.Kind == note.KindCheckbox {
			break
		}
		m.mode = modeRow
		m.input.SetValue(row.Content)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.toggleCheck):
		m.toggleCheckbox()

	case key.Matches(msg, m.keys.addText):
		m.addRow(note.KindText)

	case key.Matches(msg, m.keys.addCheckbox):
		m.addRow(note.KindCheckbox)

	case key.Matches(msg, m.keys.addBullet):
		m.addRow(note.KindBullet)

	case key.Matches(msg, m.keys.addImage):
		m.addRow(note.KindImage)

	case key.Matches(msg, m.keys.duplicateRow):
		m.duplicateRow()

	case key.Matches(msg, m.keys.deleteRow):
		m.deleteRow()
	}

	return m, nil
}

func (m *Model) handleInputUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInput) {
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	if key.Matches(msg, m.keys.submitInput) {
		value := m.input.Value()
		switch m.mode {
		case modeTitle:
			m.apply(value, m.rows())
		case modeRow:
			rows := m.rows()
			if m.cursor < len(rows) {
				m.apply(m.title(), note.UpdateRow(rows, rows[m.cursor].ID, value))
			}
		}
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) title() string {
	m.draft.mu.Lock()
	defer m.draft.mu.Unlock()
	return m.draft.title
}

func (m *Model) rows() []note.Row {
	m.draft.mu.Lock()
	defer m.draft.mu.Unlock()
	return m.draft.rows
}

// apply records the new draft, mirrors it into the store so list views see
// the edit immediately, and signals the coordinator.
func (m *Model) apply(title string, rows []note.Row) {
	m.draft.set(title, rows)
	m.state.Store.ApplyLocal(m.noteID, title, rows)
	m.saver.Edited()
}

func (m *Model) addRow(kind note.Kind) {
	rows := note.AddRow(m.rows(), kind)
	m.apply(m.title(), rows)
	m.cursor = len(rows) - 1
}

func (m *Model) toggleCheckbox() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	row := rows[m.cursor]
	if row.Kind != note.KindCheckbox {
		return
	}

	next := note.CheckboxChecked
	if row.Checked() {
		next = note.CheckboxUnchecked
	}
	m.apply(m.title(), note.UpdateRow(rows, row.ID, next))
}

func (m *Model) duplicateRow() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	m.apply(m.title(), note.DuplicateRow(rows, rows[m.cursor].ID))
	m.cursor++
}

func (m *Model) deleteRow() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return
	}
	m.apply(m.title(), note.RemoveRow(rows, rows[m.cursor].ID))
	if m.cursor >= len(m.rows()) && m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title()))
	b.WriteString("\n\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(rowStyle.Render("(empty note)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		line := renderRow(row)
		if i == m.cursor && m.mode == modeBrowse {
			line = selectedRowStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	switch m.mode {
	case modeTitle:
		fmt.Fprintf(&b, "\nTitle: %s\n", m.input.View())
	case modeRow:
		fmt.Fprintf(&b, "\nRow: %s\n", m.input.View())
	default:
		b.WriteString("\n")
		b.WriteString(m.statusLine())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(
			"↵ edit · t title · space toggle · a/c/b/i add · y dup · x del · q quit",
		))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

func (m *Model) statusLine() string {
	if msg := m.state.Store.LastError(); msg != "" {
		return errorStyle.Render("Save failed: " + msg)
	}

	dirty, saving := m.saver.Status()
	switch {
	case saving:
		return savingStyle.Render("Saving…")
	case dirty:
		return savingStyle.Render("Unsaved changes")
	default:
		return savedStyle.Render("Saved")
	}
}

func renderRow(row note.Row) string {
	switch row.Kind {
	case note.KindCheckbox:
		if row.Checked() {
			return "[✓] " + row.Label()
		}
		return "[ ] " + row.Label()
	case note.KindBullet:
		return "• " + row.Content
	case note.KindImage:
		if row.Content == "" {
			return "[Image not attached]"
		}
		return "[Image: " + row.Content + "]"
	default:
		return row.Content
	}
}
