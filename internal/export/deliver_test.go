package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeSharer struct {
	name      string
	available bool
	err       error
	shared    []string
}

func (f *fakeSharer) Name() string                        { return f.name }
func (f *fakeSharer) Available(context.Context) bool      { return f.available }
func (f *fakeSharer) Share(_ context.Context, path, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.shared = append(f.shared, path)
	return nil
}

func TestExportWritesFileAndShares(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := NewExporter(dir, zerolog.Nop())
	sharer := &fakeSharer{name: "test", available: true}
	e.AddSharer(sharer)

	res, err := e.Export(context.Background(), sampleNote(), FormatText)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.Contains(string(data), "Trip Planning") {
		t.Fatal("export file missing note content")
	}
	if filepath.Dir(res.Path) != dir {
		t.Fatalf("export escaped the scoped directory: %s", res.Path)
	}
	if !strings.HasSuffix(res.Path, ".txt") {
		t.Fatalf("wrong extension: %s", res.Path)
	}

	if res.SharedVia != "test" || len(sharer.shared) != 1 {
		t.Fatalf("share hand-off not recorded: %+v", res)
	}
	if res.Notice != "" {
		t.Fatal("shared export should not carry a completion notice")
	}
}

func TestExportFallsBackToNoticeWhenSharingUnavailable(t *testing.T) {
	t.Parallel()

	e := NewExporter(t.TempDir(), zerolog.Nop())
	e.AddSharer(&fakeSharer{name: "off", available: false})

	res, err := e.Export(context.Background(), sampleNote(), FormatMarkdown)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if res.SharedVia != "" {
		t.Fatal("unavailable sharer should be skipped")
	}
	if !strings.HasPrefix(res.Notice, "Export complete:") {
		t.Fatalf("expected completion notice, got %q", res.Notice)
	}
}

func TestExportShareFailureSurfacesExportError(t *testing.T) {
	t.Parallel()

	e := NewExporter(t.TempDir(), zerolog.Nop())
	e.AddSharer(&fakeSharer{name: "broken", available: true, err: errors.New("no space")})

	res, err := e.Export(context.Background(), sampleNote(), FormatHTML)

	var exportErr *ExportError
	if !errors.As(err, &exportErr) || exportErr.Stage != "share" {
		t.Fatalf("expected share ExportError, got %v", err)
	}

	// The partial file stays on disk; it is a harmless orphan.
	if _, statErr := os.Stat(res.Path); statErr != nil {
		t.Fatalf("written file should remain after share failure: %v", statErr)
	}
}

func TestExportWriteFailure(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(dir, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExporter(dir, zerolog.Nop())
	_, err := e.Export(context.Background(), sampleNote(), FormatText)

	var exportErr *ExportError
	if !errors.As(err, &exportErr) || exportErr.Stage != "write" {
		t.Fatalf("expected write ExportError, got %v", err)
	}
}

func TestArchiveRecordsExports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := NewExporter(dir, zerolog.Nop())
	e.SetArchive(NewArchive(dir))

	if _, err := e.Export(context.Background(), sampleNote(), FormatText); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf("archive repository not initialized: %v", err)
	}
}
