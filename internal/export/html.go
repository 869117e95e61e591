package export

import (
	"fmt"
	"strings"
	"time"

	"fnotes/internal/note"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            margin: 0;
            padding: 20px;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            background-color: #f8f9fa;
        }
        .note-header {
            background: white;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 20px;
        }
        .note-title {
            font-size: 2em;
            margin: 0 0 10px 0;
            color: #1a1a1a;
            border-bottom: 3px solid #007AFF;
            padding-bottom: 10px;
        }
        .note-meta {
            color: #666;
            font-size: 0.9em;
            margin-bottom: 20px;
        }
        .note-content {
            background: white;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .row {
            margin-bottom: 20px;
            padding-bottom: 20px;
            border-bottom: 1px solid #eee;
        }
        .row:last-child {
            border-bottom: none;
            margin-bottom: 0;
        }
        .text-row {
            white-space: pre-wrap;
            font-size: 16px;
        }
        .checkbox-row {
            display: flex;
            align-items: flex-start;
        }
        .checkbox {
            margin-right: 10px;
            margin-top: 2px;
        }
        .bullet-row {
            display: flex;
        }
        .bullet {
            margin-right: 10px;
            font-weight: bold;
        }
        .image-row {
            text-align: center;
        }
        .image-placeholder {
            color: #999;
            font-style: italic;
            padding: 20px;
            background: #f8f8f8;
            border-radius: 8px;
        }
        .export-footer {
            text-align: center;
            margin-top: 30px;
            color: #999;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <div class="note-header">
        <h1 class="note-title">%s</h1>
        <div class="note-meta">
            <strong>Created:</strong> %s<br>
            <strong>Updated:</strong> %s
        </div>
    </div>

    <div class="note-content">
`

func renderHTML(n note.Note, now time.Time) string {
	var b strings.Builder

	title := EscapeHTML(n.Title)
	fmt.Fprintf(&b, htmlHead,
		title, title,
		n.CreatedAt.Format(timeLayout),
		n.UpdatedAt.Format(timeLayout),
	)

	for _, r := range n.Rows {
		fmt.Fprintf(&b, "        <div class=\"row %s-row\">\n", r.Kind)
		switch r.Kind {
		case note.KindText:
			content := strings.ReplaceAll(EscapeHTML(r.Content), "\n", "<br>")
			fmt.Fprintf(&b, "            <div class=\"text-row\">%s</div>\n", content)
		case note.KindCheckbox:
			mark := "⬜"
			if r.Checked() {
				mark = "✅"
			}
			b.WriteString("            <div class=\"checkbox-row\">\n")
			fmt.Fprintf(&b, "                <div class=\"checkbox\">%s</div>\n", mark)
			fmt.Fprintf(&b, "                <div class=\"checkbox-text\">%s</div>\n", EscapeHTML(r.Label()))
			b.WriteString("            </div>\n")
		case note.KindBullet:
			b.WriteString("            <div class=\"bullet-row\">\n")
			b.WriteString("                <div class=\"bullet\">•</div>\n")
			fmt.Fprintf(&b, "                <div class=\"bullet-text\">%s</div>\n", EscapeHTML(r.Content))
			b.WriteString("            </div>\n")
		case note.KindImage:
			b.WriteString("            <div class=\"image-row\">\n")
			if r.Content != "" {
				fmt.Fprintf(&b, "                <div class=\"image-placeholder\">📷 Image: %s</div>\n",
					EscapeHTML(imageName(r.Content, "Attached")))
			} else {
				b.WriteString("                <div class=\"image-placeholder\">📷 No image attached</div>\n")
			}
			b.WriteString("            </div>\n")
		}
		b.WriteString("        </div>\n")
	}

	fmt.Fprintf(&b, `    </div>

    <div class="export-footer">
        Exported from Fire Notes App on %s
    </div>
</body>
</html>`, now.Format(timeLayout))

	return b.String()
}
