// Package fzf provides fuzzy note selection with a markdown preview pane.
package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"fnotes/internal/export"
	"fnotes/internal/note"
)

// FuzzyFinder encapsulates the fuzzy finder functionality
type FuzzyFinder struct {
	Header string
	notes  []note.Note
}

func NewFuzzyFinder(header string) *FuzzyFinder {
	return &FuzzyFinder{Header: header}
}

// Run presents the notes and returns the selected one.
func (f *FuzzyFinder) Run(notes []note.Note) (note.Note, error) {
	return f.RunWithQuery(notes, "")
}

func (f *FuzzyFinder) RunWithQuery(notes []note.Note, query string) (note.Note, error) {
	if len(notes) == 0 {
		return note.Note{}, fmt.Errorf("no notes to select from")
	}

	f.notes = notes

	idx, err := f.fuzzySelectNote(query)
	if err != nil {
		return note.Note{}, err
	}
	if idx == -1 {
		return note.Note{}, fmt.Errorf("no note selected")
	}

	return f.notes[idx], nil
}

// fuzzySelectNote performs fuzzy selection on notes based on query
func (f *FuzzyFinder) fuzzySelectNote(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderNotePreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	return fuzzyfinder.Find(f.notes, func(i int) string {
		return displayLine(f.notes[i])
	}, options...)
}

func (f *FuzzyFinder) renderNotePreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	return export.Preview(f.notes[i], w)
}

func displayLine(n note.Note) string {
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}

	open, total := 0, 0
	for _, row := range n.Rows {
		if row.Kind != note.KindCheckbox {
			continue
		}
		total++
		if !row.Checked() {
			open++
		}
	}

	if total == 0 {
		return fmt.Sprintf("%s [%d rows]", title, len(n.Rows))
	}
	return fmt.Sprintf(
		"%s [%d rows, %d open %s]",
		title,
		len(n.Rows),
		open,
		pluralTasks(open),
	)
}

func pluralTasks(n int) string {
	if n == 1 {
		return "task"
	}
	return "tasks"
}
