package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"wiregrid/core"
	"wiregrid/engine"
)

// Diagram is the on-disk description consumed by the CLI. It mirrors what a
// diagram editor would hand to the engine: an obstacle snapshot plus the
// connection requests.
type Diagram struct {
	Canvas      core.Rect              `json:"canvas"`
	Components  []core.ComponentBounds `json:"components"`
	Connections []Connection           `json:"connections"`
}

// Connection is one routing request from the diagram file.
type Connection struct {
	ID    string              `json:"id"`
	Start core.Point          `json:"start"`
	End   core.Point          `json:"end"`
	Type  core.ConnectionType `json:"type,omitempty"`
}

// loadDiagram reads and validates a diagram file.
func loadDiagram(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading diagram: %w", err)
	}

	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing diagram %s: %w", path, err)
	}
	if d.Canvas.Empty() {
		return nil, fmt.Errorf("diagram %s: canvas has zero area", path)
	}
	return &d, nil
}

// routeDiagram builds an engine for the diagram and routes every connection.
func routeDiagram(d *Diagram) (*engine.Engine, []core.RoutedWire) {
	cfg := engine.DefaultConfig()
	if gridSize > 0 {
		cfg.GridSize = gridSize
	}

	eng := engine.New(cfg)
	eng.SetObstacles(d.Components, d.Canvas)

	wires := make([]core.RoutedWire, 0, len(d.Connections))
	for _, conn := range d.Connections {
		wires = append(wires, eng.RouteWire(conn.Start, conn.End, conn.ID, conn.Type))
	}
	return eng, wires
}
