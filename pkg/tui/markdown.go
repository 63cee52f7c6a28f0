package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpText is the markdown source of the help overlay.
const helpText = `# taskview

Type an instruction and press **enter** to submit it to the task
executor. While a task is in flight, further submits are ignored —
one task at a time.

- The left panel shows the reasoning trace as the run recorded it.
- The right panel shows the execution diagram. A diagram that fails
  to render falls back to its raw definition text.
- The bottom bar carries the live view URL of the browser
  environment; open it in a browser to watch the run.

Press **ctrl+g** again to close this help.`

// renderMarkdown converts markdown to styled terminal output,
// constrained to the given column width. Falls back to the raw input
// if glamour is unavailable or rendering fails.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// Glamour adds trailing newlines; trim for inline use
	return strings.TrimRight(out, "\n")
}
