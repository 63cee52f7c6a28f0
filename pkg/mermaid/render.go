package mermaid

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ReadyArtifact is the artifact for an empty definition. An empty
// diagram string is a legal render request, not absence of one.
const ReadyArtifact = `    ┌────────────────────────────┐
    │   no diagram yet           │
    │   submit a task to begin   │
    └────────────────────────────┘`

// Engine renders flowchart definitions into ASCII artifacts.
// Stateless per call and safe for concurrent use.
type Engine struct{}

// Render produces the artifact for a definition. An empty definition
// renders the ready artifact. A definition that fails to parse returns
// the error — the caller owns the fallback policy.
func (Engine) Render(ctx context.Context, definition string) (string, error) {
	if strings.TrimSpace(definition) == "" {
		return ReadyArtifact, nil
	}
	g, err := Parse(definition)
	if err != nil {
		return "", err
	}
	return g.ASCII(), nil
}

// ASCII lays the graph out vertically in declaration order, one box
// per node. The edge to the next declared node becomes the main-flow
// connector; every other edge is drawn as a labelled branch line.
func (g *Graph) ASCII() string {
	if len(g.Nodes) == 0 {
		return "(empty diagram)"
	}

	const indent = 4
	width := g.boxWidth()
	connCol := indent + 1 + width/2 // +1 for the border character
	pad := strings.Repeat(" ", indent)
	connPad := strings.Repeat(" ", connCol)

	var b strings.Builder
	for i, n := range g.Nodes {
		out := g.outgoing(n.ID)

		next := ""
		if i < len(g.Nodes)-1 {
			next = g.Nodes[i+1].ID
		}
		toNext := -1
		for j, e := range out {
			if e.To == next {
				toNext = j
				break
			}
		}

		writeBox(&b, n, pad, width, len(out) > 0)

		// Branch lines: every outgoing edge except the main-flow one.
		for j, e := range out {
			if j == toNext {
				continue
			}
			label := ""
			if e.Label != "" {
				label = fmt.Sprintf(" %q", e.Label)
			}
			dash := "─"
			if e.Dotted {
				dash = "┄"
			}
			fmt.Fprintf(&b, "%s├%s%s▸ %s\n", connPad, dash, label, g.node(e.To).Label)
		}

		if toNext >= 0 {
			if l := out[toNext].Label; l != "" {
				fmt.Fprintf(&b, "%s│ %q\n", connPad, l)
			} else {
				b.WriteString(connPad + "│\n")
			}
			b.WriteString(connPad + "▼\n")
		} else if i < len(g.Nodes)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// boxWidth returns the uniform interior width, so every box and
// connector column aligns.
func (g *Graph) boxWidth() int {
	w := 18
	for _, n := range g.Nodes {
		if nw := runewidth.StringWidth(boxContent(n)); nw > w {
			w = nw
		}
	}
	return w
}

func boxContent(n Node) string {
	return " " + shapeGlyph(n.Shape) + n.Label + " "
}

func writeBox(b *strings.Builder, n Node, pad string, width int, hasConn bool) {
	content := boxContent(n)
	cw := runewidth.StringWidth(content)
	mid := width / 2

	b.WriteString(pad + "┌" + strings.Repeat("─", width) + "┐\n")
	b.WriteString(pad + "│" + content + strings.Repeat(" ", width-cw) + "│\n")
	if hasConn {
		b.WriteString(pad + "└" + strings.Repeat("─", mid) + "┬" + strings.Repeat("─", width-mid-1) + "┘\n")
	} else {
		b.WriteString(pad + "└" + strings.Repeat("─", width) + "┘\n")
	}
}

// shapeGlyph marks non-rectangular shapes, since ASCII boxes all look
// alike.
func shapeGlyph(s Shape) string {
	switch s {
	case ShapeDiamond:
		return "◇ "
	case ShapeHexagon:
		return "⬡ "
	case ShapeStadium:
		return "◉ "
	case ShapeRound:
		return "◯ "
	case ShapeSubroutine:
		return "▣ "
	case ShapeParallelogram:
		return "▱ "
	default:
		return ""
	}
}
