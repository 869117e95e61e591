package note

import "testing"

func assertDenseOrder(t *testing.T, rows []Row) {
	t.Helper()
	for i, r := range rows {
		if r.Order != i {
			t.Fatalf("row %d has order %d, want %d", i, r.Order, i)
		}
	}
}

func TestAddRowDefaults(t *testing.T) {
	t.Parallel()

	var rows []Row
	rows = AddRow(rows, KindText)
	rows = AddRow(rows, KindCheckbox)
	rows = AddRow(rows, KindImage)
	rows = AddRow(rows, KindBullet)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	assertDenseOrder(t, rows)

	if rows[0].Content != "" {
		t.Errorf("text row should start empty, got %q", rows[0].Content)
	}
	if rows[1].Content != CheckboxUnchecked {
		t.Errorf("checkbox row should start unchecked, got %q", rows[1].Content)
	}
	if rows[2].Content != "" {
		t.Errorf("image row should start without a reference, got %q", rows[2].Content)
	}

	seen := make(map[string]bool)
	for _, r := range rows {
		if r.ID == "" {
			t.Fatal("row created without an id")
		}
		if seen[r.ID] {
			t.Fatalf("duplicate row id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestUpdateRow(t *testing.T) {
	t.Parallel()

	rows := AddRow(nil, KindText)
	id := rows[0].ID

	updated := UpdateRow(rows, id, "hello")
	if updated[0].Content != "hello" {
		t.Fatalf("expected updated content, got %q", updated[0].Content)
	}
	if rows[0].Content != "" {
		t.Fatal("UpdateRow mutated its input")
	}

	same := UpdateRow(rows, "missing", "x")
	if same[0].Content != "" {
		t.Fatal("unknown id should leave rows unchanged")
	}
}

func TestRemoveRowRenumbers(t *testing.T) {
	t.Parallel()

	rows := AddRow(nil, KindText)
	rows = AddRow(rows, KindBullet)
	rows = AddRow(rows, KindCheckbox)

	rows = RemoveRow(rows, rows[1].ID)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	assertDenseOrder(t, rows)
	if rows[1].Kind != KindCheckbox {
		t.Fatalf("wrong row removed, tail kind is %q", rows[1].Kind)
	}
}

func TestDuplicateRowInsertsBelowSource(t *testing.T) {
	t.Parallel()

	rows := AddRow(nil, KindText)
	rows = AddRow(rows, KindCheckbox)
	rows = UpdateRow(rows, rows[1].ID, "buy milk")
	rows = AddRow(rows, KindBullet)

	src := rows[1]
	rows = DuplicateRow(rows, src.ID)

	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	dup := rows[2]
	if dup.ID == src.ID {
		t.Fatal("duplicate kept the source id")
	}
	if dup.Kind != src.Kind || dup.Content != src.Content {
		t.Fatalf("duplicate differs from source: %+v vs %+v", dup, src)
	}
	assertDenseOrder(t, rows)

	if same := DuplicateRow(rows, "missing"); len(same) != len(rows) {
		t.Fatal("unknown id should be a no-op")
	}
}

func TestOrderStaysDenseAcrossEditSequences(t *testing.T) {
	t.Parallel()

	var rows []Row
	for i := 0; i < 5; i++ {
		rows = AddRow(rows, KindText)
	}
	rows = RemoveRow(rows, rows[0].ID)
	rows = DuplicateRow(rows, rows[2].ID)
	rows = RemoveRow(rows, rows[4].ID)
	rows = AddRow(rows, KindImage)

	assertDenseOrder(t, rows)
}

func TestCheckboxSentinels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		content string
		checked bool
		label   string
	}{
		{CheckboxChecked, true, ""},
		{CheckboxUnchecked, false, ""},
		{"call the dentist", false, "call the dentist"},
		{"", false, ""},
	}

	for _, tc := range cases {
		r := Row{Kind: KindCheckbox, Content: tc.content}
		if r.Checked() != tc.checked {
			t.Errorf("content %q: checked = %v, want %v", tc.content, r.Checked(), tc.checked)
		}
		if r.Label() != tc.label {
			t.Errorf("content %q: label = %q, want %q", tc.content, r.Label(), tc.label)
		}
	}
}

func TestNoteIdentifierDuality(t *testing.T) {
	t.Parallel()

	n := New()
	if n.LocalID == "" {
		t.Fatal("new note missing local id")
	}
	if n.Persisted() {
		t.Fatal("new note should not be persisted")
	}
	if n.ID() != n.LocalID {
		t.Fatal("unpersisted note should identify by local id")
	}
	if !n.Is(n.LocalID) {
		t.Fatal("note should match its local id")
	}

	n.RemoteID = "6543ab"
	if n.ID() != "6543ab" {
		t.Fatal("persisted note should identify by remote id")
	}
	if !n.Is(n.LocalID) || !n.Is("6543ab") {
		t.Fatal("note should match both identifiers after persist")
	}
	if n.Is("") {
		t.Fatal("empty id must never match")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	n := New()
	n.Rows = AddRow(nil, KindText)

	c := n.Clone()
	c.Rows = UpdateRow(c.Rows, c.Rows[0].ID, "changed")

	if n.Rows[0].Content != "" {
		t.Fatal("clone shares row storage with the source")
	}
}
