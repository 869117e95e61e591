package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"fnotes/internal/note"
)

type ListItem struct {
	note note.Note
}

func (i ListItem) Title() string {
	if i.note.Title == "" {
		return "(untitled)"
	}
	return i.note.Title
}

func (i ListItem) Description() string {
	counts := make(map[note.Kind]int)
	for _, row := range i.note.Rows {
		counts[row.Kind]++
	}

	parts := make([]string, 0, 3)
	if n := counts[note.KindCheckbox]; n > 0 {
		done := 0
		for _, row := range i.note.Rows {
			if row.Kind == note.KindCheckbox && row.Checked() {
				done++
			}
		}
		parts = append(parts, fmt.Sprintf("%d/%d tasks", done, n))
	}
	if n := counts[note.KindImage]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d images", n))
	}
	parts = append(parts, fmt.Sprintf("%d rows", len(i.note.Rows)))

	return fmt.Sprintf(
		"%s · %s",
		strings.Join(parts, ", "),
		i.note.UpdatedAt.Format("Jan 02 15:04"),
	)
}

func (i ListItem) FilterValue() string {
	parts := []string{i.note.Title}
	for _, row := range i.note.Rows {
		if row.Kind == note.KindCheckbox {
			parts = append(parts, row.Label())
			continue
		}
		parts = append(parts, row.Content)
	}
	return strings.Join(parts, " ")
}

func (i ListItem) Note() note.Note {
	return i.note
}

func toListItems(notes []note.Note) []list.Item {
	items := make([]list.Item, 0, len(notes))
	for _, n := range notes {
		items = append(items, ListItem{note: n})
	}
	return items
}
