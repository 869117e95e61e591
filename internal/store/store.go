// Package store is the client-side note cache: the list screen and editor
// read from here, mutations apply optimistically, and remote results are
// reconciled back in. One instance lives on the app state; nothing here is
// a process-wide singleton.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"fnotes/internal/note"
	"fnotes/internal/remote"
)

type Notes struct {
	client *remote.Client
	log    zerolog.Logger

	mu      sync.Mutex
	notes   []note.Note
	loading bool
	saving  bool
	lastErr string
}

func NewNotes(client *remote.Client, log zerolog.Logger) *Notes {
	return &Notes{client: client, log: log}
}

// Fetch replaces the cache with the store's list, newest update first.
func (s *Notes) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	notes, err := s.client.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.notes = notes
	s.sortLocked()
	return nil
}

// All returns a snapshot of the cached notes.
func (s *Notes) All() []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]note.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Get looks a note up by either of its identifiers.
func (s *Notes) Get(id string) (note.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notes {
		if n.Is(id) {
			return n.Clone(), true
		}
	}
	return note.Note{}, false
}

// Len reports the number of cached notes.
func (s *Notes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

// Create persists a new note and places it at the top of the cache.
func (s *Notes) Create(ctx context.Context, title string, rows []note.Row) (note.Note, error) {
	s.mu.Lock()
	s.saving = true
	s.lastErr = ""
	s.mu.Unlock()

	created, err := s.client.Create(ctx, title, rows)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		return note.Note{}, err
	}
	s.notes = append([]note.Note{created}, s.notes...)
	return created.Clone(), nil
}

// ApplyLocal is the optimistic update: the cache reflects an edit
// immediately, before (and regardless of) remote confirmation.
func (s *Notes) ApplyLocal(id, title string, rows []note.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].Is(id) {
			s.notes[i].Title = title
			s.notes[i].Rows = append([]note.Row(nil), rows...)
			s.notes[i].Touch()
			s.sortLocked()
			return
		}
	}
}

// Save persists the note's current title and rows and reconciles the
// store's canonical copy back into the cache. This is the save coordinator's
// commit function.
func (s *Notes) Save(ctx context.Context, id, title string, rows []note.Row) (note.Note, error) {
	s.mu.Lock()
	s.saving = true
	s.mu.Unlock()

	payload := remote.UpdatePayload{Title: &title, Rows: &rows}
	saved, err := s.client.Update(ctx, id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false
	if err != nil {
		s.lastErr = err.Error()
		return note.Note{}, err
	}

	s.lastErr = ""
	for i := range s.notes {
		if s.notes[i].Is(id) {
			local := s.notes[i].LocalID
			s.notes[i] = saved
			s.notes[i].LocalID = local
			break
		}
	}
	s.sortLocked()
	return saved.Clone(), nil
}

// Delete removes the note locally and issues the remote delete. A remote
// failure is reported but does not resurrect local state; unpersisted notes
// are removed locally with no remote call.
func (s *Notes) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	var target note.Note
	found := false
	kept := s.notes[:0]
	for _, n := range s.notes {
		if !found && n.Is(id) {
			target = n
			found = true
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept
	s.mu.Unlock()

	if !found {
		return remote.ErrNotFound
	}
	if !target.Persisted() {
		return nil
	}

	if err := s.client.Delete(ctx, target.RemoteID); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.log.Warn().Str("id", target.RemoteID).Err(err).Msg("remote delete failed")
		return err
	}
	return nil
}

// Flags reports (isLoading, isSaving) for presentation.
func (s *Notes) Flags() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.saving
}

// LastError returns the most recent failure message, empty when none.
func (s *Notes) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError drops the stored failure message.
func (s *Notes) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

func (s *Notes) sortLocked() {
	sort.SliceStable(s.notes, func(i, j int) bool {
		return s.notes[i].UpdatedAt.After(s.notes[j].UpdatedAt)
	})
}
