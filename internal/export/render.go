// Package export renders a note document into shareable text formats and
// delivers the result: a write into the scoped export directory followed by
// a hand-off to whatever share capability is configured.
package export

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"fnotes/internal/note"
)

// Format selects an export encoding.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// FormatInfo describes one available export format for pickers and help text.
type FormatInfo struct {
	Key         Format
	Label       string
	Description string
}

// Formats lists every supported export format.
func Formats() []FormatInfo {
	return []FormatInfo{
		{Key: FormatText, Label: "Text File", Description: "Plain text format"},
		{Key: FormatMarkdown, Label: "Markdown", Description: "Markdown format with formatting"},
		{Key: FormatHTML, Label: "HTML", Description: "Web page with styling"},
	}
}

// ParseFormat maps a user-supplied format key to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported export format: %s", s)
}

const timeLayout = "Jan 2, 2006 3:04:05 PM"

// Render converts a note into the requested format. Rendering is pure; now
// stamps the export footer.
func Render(n note.Note, f Format, now time.Time) (string, error) {
	switch f {
	case FormatText:
		return renderText(n, now), nil
	case FormatMarkdown:
		return renderMarkdown(n, now), nil
	case FormatHTML:
		return renderHTML(n, now), nil
	}
	return "", fmt.Errorf("unsupported export format: %s", f)
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]`)

// Filename derives a safe, unique filename for an export: lowercased title
// with everything outside [a-z0-9] collapsed to underscores, suffixed with a
// millisecond timestamp and the format's extension.
func Filename(title string, f Format, now time.Time) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "_")
	return fmt.Sprintf("%s_%d.%s", slug, now.UnixMilli(), f)
}

func renderText(n note.Note, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	fmt.Fprintf(&b, "Created: %s\n", n.CreatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Updated: %s\n\n", n.UpdatedAt.Format(timeLayout))
	b.WriteString("--- CONTENT ---\n\n")

	for i, r := range n.Rows {
		fmt.Fprintf(&b, "[%d] ", i+1)
		switch r.Kind {
		case note.KindText:
			fmt.Fprintf(&b, "%s\n\n", r.Content)
		case note.KindCheckbox:
			status := "[ ]"
			if r.Checked() {
				status = "[✓]"
			}
			fmt.Fprintf(&b, "%s %s\n\n", status, r.Label())
		case note.KindBullet:
			fmt.Fprintf(&b, "• %s\n\n", r.Content)
		case note.KindImage:
			fmt.Fprintf(&b, "[Image: %s]\n\n", imageName(r.Content, "No image attached"))
		}
	}

	fmt.Fprintf(&b, "\n---\nExported from Fire Notes App on %s", now.Format(timeLayout))
	return b.String()
}

func renderMarkdown(n note.Note, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	fmt.Fprintf(&b, "**Created:** %s  \n", n.CreatedAt.Format(timeLayout))
	fmt.Fprintf(&b, "**Updated:** %s  \n\n", n.UpdatedAt.Format(timeLayout))
	b.WriteString("---\n\n")

	for _, r := range n.Rows {
		switch r.Kind {
		case note.KindText:
			// Hard line breaks survive as trailing double spaces.
			fmt.Fprintf(&b, "%s\n\n", strings.ReplaceAll(r.Content, "\n", "  \n"))
		case note.KindCheckbox:
			status := "[ ]"
			if r.Checked() {
				status = "[x]"
			}
			fmt.Fprintf(&b, "- %s %s\n", status, r.Label())
		case note.KindBullet:
			fmt.Fprintf(&b, "- %s\n", r.Content)
		case note.KindImage:
			if r.Content != "" {
				fmt.Fprintf(&b, "![%s](%s)\n\n", imageName(r.Content, "image"), r.Content)
			} else {
				b.WriteString("*[Image not attached]*\n\n")
			}
		}
	}

	fmt.Fprintf(&b, "\n---\n*Exported from Fire Notes App on %s*", now.Format(timeLayout))
	return b.String()
}

// imageName extracts the basename of a content URI, falling back when the
// row has no attachment.
func imageName(uri, fallback string) string {
	if uri == "" {
		return fallback
	}
	if name := path.Base(uri); name != "." && name != "/" {
		return name
	}
	return fallback
}

// EscapeHTML applies the store-compatible entity escaping to user content
// before it is inserted into markup.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#039;")
	return s
}
