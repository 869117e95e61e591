package export

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// ClipboardSharer copies the rendered export onto the system clipboard.
type ClipboardSharer struct{}

func (ClipboardSharer) Name() string { return "clipboard" }

func (ClipboardSharer) Available(context.Context) bool {
	return !clipboard.Unsupported
}

func (ClipboardSharer) Share(_ context.Context, path, _ string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read export for clipboard: %w", err)
	}
	return clipboard.WriteAll(string(data))
}
