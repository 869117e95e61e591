// Package note defines the row-based note document model and the pure
// operations over it. Nothing in this package performs I/O.
package note

import (
	"time"

	"github.com/google/uuid"
)

// Kind tags the behavior of a row. The set is closed; the remote store
// rejects anything else.
type Kind string

const (
	KindText     Kind = "text"
	KindImage    Kind = "image"
	KindCheckbox Kind = "checkbox"
	KindBullet   Kind = "bullet"
)

// Kinds lists every valid row kind in display order.
func Kinds() []Kind {
	return []Kind{KindText, KindImage, KindCheckbox, KindBullet}
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindCheckbox, KindBullet:
		return true
	}
	return false
}

// Checkbox rows store their state in Content using these sentinel values.
// Any other content is treated as label text. The store schema keeps a
// single content string per row, so the conflation is preserved for wire
// compatibility.
const (
	CheckboxChecked   = "checked"
	CheckboxUnchecked = "unchecked"
)

// Row is one content unit within a note. Content is kind-dependent: freeform
// text for text/bullet rows, a sentinel or label for checkbox rows, and a
// content URI (or empty) for image rows.
type Row struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"type"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// Checked reports whether a checkbox row is in the checked state.
func (r Row) Checked() bool {
	return r.Content == CheckboxChecked
}

// Label returns the user-visible label of a checkbox row. Sentinel-only
// content means the box has no label.
func (r Row) Label() string {
	if r.Content == CheckboxChecked || r.Content == CheckboxUnchecked {
		return ""
	}
	return r.Content
}

// DefaultTitle is assigned to freshly created notes.
const DefaultTitle = "New Note"

// Note is a titled ordered collection of rows. A note carries a client-local
// identifier from creation and gains a store-issued identifier after its
// first successful persist; until then only LocalID is set.
type Note struct {
	LocalID   string
	RemoteID  string
	Title     string
	UserID    string
	Rows      []Row
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns an unpersisted note with a fresh local id and the default title.
func New() Note {
	now := time.Now()
	return Note{
		LocalID:   uuid.NewString(),
		Title:     DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ID returns the canonical identifier: the store-issued id once the note has
// been persisted, the local id before that.
func (n Note) ID() string {
	if n.RemoteID != "" {
		return n.RemoteID
	}
	return n.LocalID
}

// Is reports whether id refers to this note by either identifier. Lookups
// must consider both until the client fully migrates to store-issued ids.
func (n Note) Is(id string) bool {
	if id == "" {
		return false
	}
	return id == n.RemoteID || id == n.LocalID
}

// Persisted reports whether the store has issued an identifier for the note.
func (n Note) Persisted() bool {
	return n.RemoteID != ""
}

// Touch refreshes the updated timestamp. Called on every accepted mutation.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}

// Clone returns a deep copy, so an editor session can hold rows independent
// of the list cache.
func (n Note) Clone() Note {
	out := n
	out.Rows = append([]Row(nil), n.Rows...)
	return out
}

// AddRow appends a new row of the given kind with kind-appropriate default
// content and returns the updated sequence. Checkbox rows start unchecked.
func AddRow(rows []Row, kind Kind) []Row {
	content := ""
	if kind == KindCheckbox {
		content = CheckboxUnchecked
	}
	out := append(append([]Row(nil), rows...), Row{
		ID:      uuid.NewString(),
		Kind:    kind,
		Content: content,
		Order:   len(rows),
	})
	return Renumber(out)
}

// UpdateRow replaces the content of the row with the matching id. Unknown
// ids leave the sequence unchanged.
func UpdateRow(rows []Row, rowID, content string) []Row {
	out := append([]Row(nil), rows...)
	for i := range out {
		if out[i].ID == rowID {
			out[i].Content = content
			break
		}
	}
	return out
}

// RemoveRow deletes the row with the matching id and renumbers the
// remainder so order values stay dense.
func RemoveRow(rows []Row, rowID string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.ID != rowID {
			out = append(out, r)
		}
	}
	return Renumber(out)
}

// DuplicateRow copies the row with the matching id, inserts the copy
// immediately after the source, and renumbers. The copy gets a fresh id but
// keeps the source's kind and content. Unknown ids are a no-op.
func DuplicateRow(rows []Row, rowID string) []Row {
	idx := -1
	for i, r := range rows {
		if r.ID == rowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rows
	}

	dup := rows[idx]
	dup.ID = uuid.NewString()

	out := make([]Row, 0, len(rows)+1)
	out = append(out, rows[:idx+1]...)
	out = append(out, dup)
	out = append(out, rows[idx+1:]...)
	return Renumber(out)
}

// Renumber reassigns order values to match array positions, dense and
// zero-based. Every structural change runs through here before the sequence
// is considered valid for persistence.
func Renumber(rows []Row) []Row {
	for i := range rows {
		rows[i].Order = i
	}
	return rows
}
