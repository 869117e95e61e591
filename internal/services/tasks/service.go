// Package tasks aggregates checkbox items across notes by parsing their
// markdown renditions.
package tasks

import (
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"fnotes/internal/export"
	"fnotes/internal/note"
)

// Item is one checkbox row surfaced from a note.
type Item struct {
	NoteID    string
	NoteTitle string
	Content   string
	Completed bool
}

// Summary groups a note's tasks with completion counts.
type Summary struct {
	NoteID    string
	NoteTitle string
	Items     []Item
	Open      int
	Done      int
}

// Collect renders each note to markdown and walks the parsed document for
// task list items, newest note first. Notes without tasks are omitted.
func Collect(notes []note.Note) ([]Summary, error) {
	summaries := make([]Summary, 0, len(notes))
	for _, n := range notes {
		items, err := parseNote(n)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}

		s := Summary{NoteID: n.ID(), NoteTitle: n.Title, Items: items}
		for _, item := range items {
			if item.Completed {
				s.Done++
			} else {
				s.Open++
			}
		}
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Open > summaries[j].Open
	})
	return summaries, nil
}

func parseNote(n note.Note) ([]Item, error) {
	rendered, err := export.Render(n, export.FormatMarkdown, time.Now())
	if err != nil {
		return nil, err
	}

	source := []byte(rendered)
	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(source))

	var items []Item
	walkErr := ast.Walk(
		document,
		func(node ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			listItem, ok := node.(*ast.ListItem)
			if !ok {
				return ast.WalkContinue, nil
			}

			content := strings.TrimSpace(string(listItem.Text(source)))
			completed, label, ok := splitTask(content)
			if !ok {
				return ast.WalkContinue, nil
			}

			items = append(items, Item{
				NoteID:    n.ID(),
				NoteTitle: n.Title,
				Content:   label,
				Completed: completed,
			})
			return ast.WalkContinue, nil
		},
	)
	if walkErr != nil {
		return nil, walkErr
	}

	return items, nil
}

// splitTask recognizes "[ ]" and "[x]" task prefixes in a list item.
func splitTask(content string) (completed bool, label string, ok bool) {
	switch {
	case strings.HasPrefix(content, "[ ]"):
		return false, strings.TrimSpace(content[3:]), true
	case strings.HasPrefix(content, "[x]"):
		return true, strings.TrimSpace(content[3:]), true
	}
	return false, "", false
}
