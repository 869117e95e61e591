package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"fnotes/internal/note"
)

// ExportError wraps a failed write or share. Rendering itself cannot fail
// for valid formats; once delivery fails the export is aborted. Partial
// files are left behind as harmless local orphans.
type ExportError struct {
	Stage string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Sharer is a capability that can hand an exported file off somewhere
// useful: the clipboard, an S3 bucket. Unavailable sharers are skipped.
type Sharer interface {
	Name() string
	Available(ctx context.Context) bool
	Share(ctx context.Context, path, title string) error
}

// Result reports where an export landed and how it was delivered.
type Result struct {
	Path      string
	Format    Format
	SharedVia string
	Notice    string
}

// Exporter writes rendered notes into the scoped export directory and runs
// the configured delivery chain.
type Exporter struct {
	dir     string
	sharers []Sharer
	archive *Archive
	log     zerolog.Logger
}

func NewExporter(dir string, log zerolog.Logger) *Exporter {
	return &Exporter{dir: dir, log: log}
}

// AddSharer appends a share capability. The first available one wins.
func (e *Exporter) AddSharer(s Sharer) {
	if s != nil {
		e.sharers = append(e.sharers, s)
	}
}

// SetArchive enables the local git export archive.
func (e *Exporter) SetArchive(a *Archive) {
	e.archive = a
}

// Dir returns the scoped export directory.
func (e *Exporter) Dir() string { return e.dir }

// Export renders the note, writes it, records it in the archive when one is
// configured, and attempts the share hand-off. When no share capability is
// available the result carries a completion notice instead.
func (e *Exporter) Export(ctx context.Context, n note.Note, f Format) (Result, error) {
	now := time.Now()

	content, err := Render(n, f, now)
	if err != nil {
		return Result{}, &ExportError{Stage: "render", Err: err}
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, &ExportError{Stage: "write", Err: err}
	}

	name := Filename(n.Title, f, now)
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return Result{}, &ExportError{Stage: "write", Err: err}
	}
	e.log.Debug().Str("path", path).Str("format", string(f)).Msg("export written")

	if e.archive != nil {
		// Archive trouble should not abort a delivered export.
		if err := e.archive.Commit(name, n.Title); err != nil {
			e.log.Warn().Err(err).Msg("failed to record export in archive")
		}
	}

	res := Result{Path: path, Format: f}
	for _, s := range e.sharers {
		if !s.Available(ctx) {
			continue
		}
		if err := s.Share(ctx, path, n.Title); err != nil {
			return res, &ExportError{Stage: "share", Err: err}
		}
		res.SharedVia = s.Name()
		return res, nil
	}

	res.Notice = fmt.Sprintf("Export complete: %s", name)
	return res, nil
}
