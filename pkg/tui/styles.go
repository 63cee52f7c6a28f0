// Package tui implements the interactive terminal client: an
// instruction prompt, the reasoning trace of the running task, the
// rendered execution diagram, and the live-view URL of the browser
// environment, in one Bubble Tea app.
package tui

import "github.com/charmbracelet/lipgloss"

// Step glyphs — convey meaning without relying on color alone.
const (
	GlyphStep    = "·"
	GlyphFailed  = "✗"
	GlyphDone    = "✓"
	GlyphPending = "…"
)

// Palette adapts to terminal capabilities via lipgloss.
var (
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("214")
	colorBlue   = lipgloss.Color("39")
	colorCyan   = lipgloss.Color("51")
	colorDim    = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("255")
)

// --- Header / prompt styles ---

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorCyan).
	Padding(0, 1)

var promptStyle = lipgloss.NewStyle().
	Foreground(colorYellow).
	Bold(true)

// --- Trace styles ---

var (
	stepNormal = lipgloss.NewStyle().
			Foreground(colorWhite)

	stepFailed = lipgloss.NewStyle().
			Foreground(colorRed)

	stepDone = lipgloss.NewStyle().
			Foreground(colorGreen)

	stepPending = lipgloss.NewStyle().
			Faint(true)

	stepIndex = lipgloss.NewStyle().
			Foreground(colorDim)
)

// --- Panel styles ---

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	panelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan).
			Padding(0, 1)

	fallbackNotice = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// --- Status / env bar styles ---

var (
	statusIdleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	envLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	envURLStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Underline(true)
)

// --- Key bar styles ---

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	keyDescStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// --- Spinner style ---

var spinnerStyle = lipgloss.NewStyle().
	Foreground(colorYellow)
