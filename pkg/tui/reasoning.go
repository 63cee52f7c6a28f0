package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ormasoftchile/taskview/pkg/trace"
)

// reasoningPanel displays the step trace of the most recent run. Pure
// presentation: it re-renders whenever a new trace snapshot arrives
// and holds no lifecycle of its own.
type reasoningPanel struct {
	vp    viewport.Model
	empty bool
}

func newReasoningPanel() reasoningPanel {
	vp := viewport.New(40, 10)
	p := reasoningPanel{vp: vp, empty: true}
	p.vp.SetContent(statusIdleStyle.Render("  trace will appear here"))
	return p
}

// SetSteps replaces the displayed trace with a read-only snapshot.
func (p *reasoningPanel) SetSteps(steps []trace.Step) {
	p.empty = len(steps) == 0
	if p.empty {
		p.vp.SetContent(statusIdleStyle.Render("  (no steps recorded)"))
		return
	}

	var b strings.Builder
	for i, s := range steps {
		glyph := GlyphStep
		style := stepNormal
		switch {
		case s.Kind == trace.KindError:
			glyph = GlyphFailed
			style = stepFailed
		case s.Done:
			glyph = GlyphDone
			style = stepDone
		case s.Kind == trace.KindPending:
			glyph = GlyphPending
			style = stepPending
		}
		b.WriteString(stepIndex.Render(fmt.Sprintf("%3d.", i+1)))
		b.WriteString(" " + glyph + " ")
		b.WriteString(style.Render(s.Text))
		b.WriteString("\n")
	}
	p.vp.SetContent(b.String())
	p.vp.GotoBottom()
}

func (p *reasoningPanel) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *reasoningPanel) View() string {
	title := panelTitle.Render("Reasoning")
	return panelBorder.Render(title + "\n" + p.vp.View())
}
