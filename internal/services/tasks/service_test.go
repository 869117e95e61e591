package tasks

import (
	"testing"

	"fnotes/internal/note"
)

func taskNote(title string, rows []note.Row) note.Note {
	n := note.New()
	n.Title = title
	n.Rows = note.Renumber(rows)
	return n
}

func TestCollectCountsOpenAndDone(t *testing.T) {
	t.Parallel()

	n := taskNote("Trip", []note.Row{
		{ID: "r1", Kind: note.KindCheckbox, Content: note.CheckboxChecked},
		{ID: "r2", Kind: note.KindCheckbox, Content: "book hotel"},
		{ID: "r3", Kind: note.KindText, Content: "remember passport"},
		{ID: "r4", Kind: note.KindBullet, Content: "misc"},
	})

	summaries, err := Collect([]note.Note{n})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.Open != 1 || s.Done != 1 {
		t.Fatalf("expected 1 open / 1 done, got %d / %d", s.Open, s.Done)
	}
	if s.Items[1].Content != "book hotel" {
		t.Fatalf("expected labelled task, got %q", s.Items[1].Content)
	}
}

func TestCollectSkipsNotesWithoutTasks(t *testing.T) {
	t.Parallel()

	n := taskNote("Plain", []note.Row{
		{ID: "r1", Kind: note.KindText, Content: "no checkboxes here"},
		{ID: "r2", Kind: note.KindBullet, Content: "a bullet is not a task"},
	})

	summaries, err := Collect([]note.Note{n})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}

func TestCollectOrdersByOpenCount(t *testing.T) {
	t.Parallel()

	light := taskNote("Light", []note.Row{
		{ID: "r1", Kind: note.KindCheckbox, Content: note.CheckboxUnchecked},
	})
	heavy := taskNote("Heavy", []note.Row{
		{ID: "r2", Kind: note.KindCheckbox, Content: "one"},
		{ID: "r3", Kind: note.KindCheckbox, Content: "two"},
	})

	summaries, err := Collect([]note.Note{light, heavy})
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].NoteTitle != "Heavy" {
		t.Fatalf("expected most open tasks first, got %q", summaries[0].NoteTitle)
	}
}
