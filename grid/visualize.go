package grid

import (
	"strings"

	"wiregrid/core"
)

// Visualizer renders the grid's cell states as ASCII art for debugging and
// the CLI's --show-grid output.
type Visualizer struct {
	ShowWires     bool
	ShowObstacles bool
}

// Render draws one character per cell. Obstacle cells are solid blocks, wire
// cells are shaded, free cells are blank.
func (v Visualizer) Render(g *Grid) string {
	var result strings.Builder

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := cell{Col: col, Row: row}
			switch {
			case v.ShowObstacles && g.blocked[c]:
				result.WriteRune('█')
			case v.ShowWires && len(g.wires[c]) > 1:
				result.WriteRune('▓')
			case v.ShowWires && len(g.wires[c]) == 1:
				result.WriteRune('░')
			default:
				result.WriteRune('·')
			}
		}
		result.WriteString("\n")
	}

	return result.String()
}

// RenderWithPath overlays a routed path on top of the cell states, marking
// its endpoints.
func (v Visualizer) RenderWithPath(g *Grid, w core.RoutedWire) string {
	overlay := make(map[cell]rune)
	for _, seg := range w.Segments {
		g.walkSegment(seg, func(c cell) {
			overlay[c] = '*'
		})
	}
	if c, ok := g.cellInBounds(w.Start); ok {
		overlay[c] = 'S'
	}
	if c, ok := g.cellInBounds(w.End); ok {
		overlay[c] = 'E'
	}

	var result strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := cell{Col: col, Row: row}
			if r, ok := overlay[c]; ok {
				result.WriteRune(r)
				continue
			}
			switch {
			case g.blocked[c]:
				result.WriteRune('█')
			case len(g.wires[c]) > 0:
				result.WriteRune('░')
			default:
				result.WriteRune('·')
			}
		}
		result.WriteString("\n")
	}

	return result.String()
}

// Legend explains the visualization symbols.
func (v Visualizer) Legend() string {
	legend := []string{
		"Grid legend:",
		"  █ - component obstacle (buffered bounds)",
		"  ░ - wire-occupied cell",
		"  ▓ - cell shared by multiple wires",
		"  · - free cell",
	}
	return strings.Join(legend, "\n")
}
