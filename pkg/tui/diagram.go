package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/render"
)

// diagramPanel displays the currently applied render outcome. The
// staleness decision is the renderer's; this panel just shows whatever
// outcome was applied last.
type diagramPanel struct {
	vp       viewport.Model
	fallback bool
}

func newDiagramPanel() diagramPanel {
	vp := viewport.New(40, 10)
	p := diagramPanel{vp: vp}
	p.vp.SetContent(mermaid.ReadyArtifact)
	return p
}

// SetOutcome replaces the displayed artifact.
func (p *diagramPanel) SetOutcome(o render.Outcome) {
	p.fallback = o.Fallback
	if o.Fallback {
		p.vp.SetContent(
			fallbackNotice.Render("  diagram failed to render — raw definition:") +
				"\n\n" + o.Artifact)
		return
	}
	p.vp.SetContent(o.Artifact)
}

func (p *diagramPanel) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *diagramPanel) PageUp()   { p.vp.PageUp() }
func (p *diagramPanel) PageDown() { p.vp.PageDown() }

func (p *diagramPanel) View() string {
	title := panelTitle.Render("Diagram")
	if p.fallback {
		title += " " + fallbackNotice.Render("(fallback)")
	}
	return panelBorder.Render(title + "\n" + p.vp.View())
}
