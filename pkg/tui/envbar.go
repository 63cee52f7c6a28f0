package tui

// envBar shows where the live view of the browser environment can be
// watched. A terminal cannot embed the view itself, so the bar renders
// the URL for the user to open. Pure function of its input: empty URL
// renders a neutral notice.
type envBar struct {
	url string
}

// SetURL replaces the displayed URL.
func (e *envBar) SetURL(url string) { e.url = url }

func (e envBar) View() string {
	if e.url == "" {
		return statusIdleStyle.Render("  no live view configured")
	}
	return envLabelStyle.Render("  Live view:") + " " + envURLStyle.Render(e.url)
}
