package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Archive keeps a git history of every export in the export directory, so a
// note's exported snapshots can be diffed and recovered later.
type Archive struct {
	dir string
}

func NewArchive(dir string) *Archive {
	return &Archive{dir: dir}
}

// Commit stages the named export file and records it. The repository is
// created on first use.
func (a *Archive) Commit(filename, title string) error {
	repo, err := git.PlainOpen(a.dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(a.dir, false)
	}
	if err != nil {
		return fmt.Errorf("failed to open export archive: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}

	if _, err := worktree.Add(filename); err != nil {
		return fmt.Errorf("failed to stage export: %w", err)
	}

	msg := fmt.Sprintf("Export %q as %s", title, filename)
	_, err = worktree.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "fnotes",
			Email: "fnotes@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}
