package export

import (
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"fnotes/internal/note"
)

// Preview renders the markdown form of a note styled for the terminal.
func Preview(n note.Note, width int) string {
	if width <= 0 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "Error building preview renderer"
	}

	md, _ := Render(n, FormatMarkdown, time.Now())
	out, err := r.Render(md)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}
