package remote

import (
	"time"

	"github.com/araddon/dateparse"

	"fnotes/internal/note"
)

// apiNote is the note representation on the wire. The store issues `_id`;
// the client keeps its own local id for notes that have not been persisted
// yet and adopts `_id` as the canonical identifier once it exists.
type apiNote struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Rows      []note.Row `json:"rows"`
	UserID    string     `json:"userId"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

func (a apiNote) toNote() note.Note {
	return note.Note{
		RemoteID:  a.ID,
		Title:     a.Title,
		UserID:    a.UserID,
		Rows:      note.Renumber(append([]note.Row(nil), a.Rows...)),
		CreatedAt: parseTime(a.CreatedAt),
		UpdatedAt: parseTime(a.UpdatedAt),
	}
}

// parseTime tolerates whatever timestamp layout the store emits. A zero time
// is better than failing the whole fetch over a malformed date.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type createPayload struct {
	Title string     `json:"title"`
	Rows  []note.Row `json:"rows"`
}

// UpdatePayload carries only the fields being persisted. Nil fields are
// omitted from the request body so the store leaves them untouched.
type UpdatePayload struct {
	Title *string     `json:"title,omitempty"`
	Rows  *[]note.Row `json:"rows,omitempty"`
}

type credentialsResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the account object issued alongside a token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Credentials is what a successful login or registration yields.
type Credentials struct {
	Token string
	User  User
}

// Health is the store's liveness report.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
