package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fnotes/internal/fzf"
	"fnotes/internal/note"
	"fnotes/internal/state"
)

// EnsureSession verifies that a usable session is stored before a command
// talks to the server.
func EnsureSession(s *state.State) error {
	if !s.Config.Authenticated() {
		return fmt.Errorf("not logged in, run 'fnotes auth login' first")
	}
	if err := s.Session.Check(); err != nil {
		return fmt.Errorf("session expired, run 'fnotes auth login' again: %w", err)
	}
	return nil
}

// SyncNotes loads the note list from the server into the store.
func SyncNotes(cmd *cobra.Command, s *state.State) error {
	if err := EnsureSession(s); err != nil {
		return err
	}
	return s.Store.Fetch(cmd.Context())
}

// ResolveNote picks the note a command should operate on. An empty argument
// opens the fuzzy finder; otherwise the argument is matched against note
// identifiers first and titles second.
func ResolveNote(s *state.State, arg, header string) (note.Note, error) {
	notes := s.Store.All()

	if arg == "" {
		finder := fzf.NewFuzzyFinder(header)
		return finder.Run(notes)
	}

	if n, ok := s.Store.Get(arg); ok {
		return n, nil
	}

	var matches []note.Note
	for _, n := range notes {
		if strings.EqualFold(n.Title, arg) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return note.Note{}, fmt.Errorf("no note matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		finder := fzf.NewFuzzyFinder(header)
		return finder.RunWithQuery(matches, arg)
	}
}
