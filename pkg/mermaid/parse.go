// Package mermaid parses Mermaid flowchart definitions and renders
// them as ASCII artifacts for terminal display. The contract is
// parse-or-error: either the definition is understood or an error is
// returned — nothing in here panics on malformed input.
package mermaid

import (
	"fmt"
	"regexp"
	"strings"
)

// Shape is the node shape implied by the bracket pair used in the
// definition.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
	ShapeStadium
	ShapeDiamond
	ShapeHexagon
	ShapeSubroutine
	ShapeParallelogram
)

// Node is one declared node. Nodes keep first-seen order so the ASCII
// layout matches the definition's reading order.
type Node struct {
	ID    string
	Label string
	Shape Shape
}

// Edge is one directed connection.
type Edge struct {
	From   string
	To     string
	Label  string
	Dotted bool
}

// Graph is a parsed flowchart.
type Graph struct {
	Direction string
	Nodes     []Node
	Edges     []Edge
	Styles    map[string]string // node ID → raw style directive

	index map[string]int
}

var (
	headerRe = regexp.MustCompile(`^(graph|flowchart)(?:\s+(TB|TD|BT|RL|LR))?$`)
	idRe     = regexp.MustCompile(`^[A-Za-z0-9_-]+`)

	// arrowRe matches an edge arrow with an optional |label| segment.
	arrowRe = regexp.MustCompile(`(-\.->|-->|==>)(\s*\|[^|]*\|)?`)
)

// Parse reads a flowchart definition. Statements are separated by
// newlines or semicolons ("graph TD;A-->B;" is the compact form the
// backend emits). %% comments and blank statements are skipped.
func Parse(definition string) (*Graph, error) {
	g := &Graph{
		Direction: "TD",
		Styles:    make(map[string]string),
		index:     make(map[string]int),
	}

	var stmts []string
	for _, line := range strings.Split(definition, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		for _, s := range strings.Split(line, ";") {
			if s = strings.TrimSpace(s); s != "" {
				stmts = append(stmts, s)
			}
		}
	}
	if len(stmts) == 0 {
		return nil, fmt.Errorf("empty definition")
	}

	m := headerRe.FindStringSubmatch(stmts[0])
	if m == nil {
		return nil, fmt.Errorf("missing graph/flowchart header, got %q", stmts[0])
	}
	if m[2] != "" {
		g.Direction = m[2]
	}

	for _, stmt := range stmts[1:] {
		if err := g.parseStatement(stmt); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) parseStatement(stmt string) error {
	fields := strings.Fields(stmt)
	switch fields[0] {
	case "style":
		if len(fields) < 3 {
			return fmt.Errorf("incomplete style directive %q", stmt)
		}
		g.Styles[fields[1]] = strings.Join(fields[2:], " ")
		return nil
	case "classDef", "class", "linkStyle":
		// Color/class directives have no ASCII representation; accept
		// and drop them so styled diagrams still render.
		return nil
	}

	// Edge chain: node (arrow node)*
	locs := arrowRe.FindAllStringSubmatchIndex(stmt, -1)
	if len(locs) == 0 {
		// Standalone node declaration
		_, rest, err := g.parseNodeTerm(stmt)
		if err != nil {
			return err
		}
		if rest != "" {
			return fmt.Errorf("trailing content %q in %q", rest, stmt)
		}
		return nil
	}

	terms := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		terms = append(terms, strings.TrimSpace(stmt[prev:loc[0]]))
		prev = loc[1]
	}
	terms = append(terms, strings.TrimSpace(stmt[prev:]))

	ids := make([]string, len(terms))
	for i, term := range terms {
		id, rest, err := g.parseNodeTerm(term)
		if err != nil {
			return err
		}
		if rest != "" {
			return fmt.Errorf("trailing content %q in %q", rest, stmt)
		}
		ids[i] = id
	}
	for i, loc := range locs {
		g.addEdge(ids[i], ids[i+1], loc, stmt)
	}
	return nil
}

// addEdge records an edge whose arrow matched at loc within stmt.
func (g *Graph) addEdge(from, to string, loc []int, stmt string) {
	arrow := stmt[loc[2]:loc[3]]
	label := ""
	if loc[4] >= 0 {
		raw := strings.TrimSpace(stmt[loc[4]:loc[5]])
		label = strings.Trim(raw, "|")
		label = strings.Trim(label, `"`)
	}
	g.Edges = append(g.Edges, Edge{
		From:   from,
		To:     to,
		Label:  label,
		Dotted: arrow == "-.->",
	})
}

// parseNodeTerm reads an ID with an optional shape bracket and label.
// Re-declaring a known node without a label keeps the earlier label.
func (g *Graph) parseNodeTerm(term string) (id, rest string, err error) {
	term = strings.TrimSpace(term)
	id = idRe.FindString(term)
	if id == "" {
		return "", "", fmt.Errorf("expected node identifier, got %q", term)
	}
	rest = term[len(id):]

	label := ""
	shape := ShapeRect
	hasLabel := false

	// Longest delimiters first so "([" is not read as "(".
	brackets := []struct {
		open, close string
		shape       Shape
	}{
		{"([", "])", ShapeStadium},
		{"[[", "]]", ShapeSubroutine},
		{"[/", "/]", ShapeParallelogram},
		{"{{", "}}", ShapeHexagon},
		{"[", "]", ShapeRect},
		{"{", "}", ShapeDiamond},
		{"(", ")", ShapeRound},
	}
	for _, b := range brackets {
		if strings.HasPrefix(rest, b.open) {
			end := strings.Index(rest[len(b.open):], b.close)
			if end < 0 {
				return "", "", fmt.Errorf("unterminated %q bracket in %q", b.open, term)
			}
			label = rest[len(b.open) : len(b.open)+end]
			label = strings.Trim(label, `"`)
			shape = b.shape
			hasLabel = true
			rest = rest[len(b.open)+end+len(b.close):]
			break
		}
	}

	if i, known := g.index[id]; known {
		if hasLabel {
			g.Nodes[i].Label = label
			g.Nodes[i].Shape = shape
		}
		return id, strings.TrimSpace(rest), nil
	}

	if !hasLabel {
		label = id
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label, Shape: shape})
	return id, strings.TrimSpace(rest), nil
}

// outgoing returns the edges leaving id, in declaration order.
func (g *Graph) outgoing(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// node returns the node with the given ID.
func (g *Graph) node(id string) Node {
	return g.Nodes[g.index[id]]
}
