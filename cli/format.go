package cli

import (
	"fmt"

	"github.com/fatih/color"

	"wiregrid/core"
)

var (
	// Color functions; fatih/color disables itself on non-TTY output.
	headerColor  = color.New(color.FgBlue, color.Bold)
	goodColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	badColor     = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	wireColor    = color.New(color.FgCyan)
	defaultColor = color.New(color.FgWhite)
)

func printHeader(format string, args ...interface{}) {
	_, _ = headerColor.Printf("▸ "+format+"\n", args...)
}

// printWire prints one routed wire with a quality-tinted score.
func printWire(w core.RoutedWire) {
	q := defaultColor
	switch {
	case w.Quality >= 0.8:
		q = goodColor
	case w.Quality >= 0.4:
		q = warnColor
	default:
		q = badColor
	}

	_, _ = wireColor.Printf("  %s", w.ID)
	fmt.Printf("  (%d,%d) → (%d,%d)  ", w.Start.X, w.Start.Y, w.End.X, w.End.Y)
	_, _ = q.Printf("quality %.2f", w.Quality)
	_, _ = dimColor.Printf("  length %d, %d bend(s)\n", w.TotalLength, w.BendCount)
}

// printReport prints the collision and junction sections of a check run.
func printReport(collisions []core.CollisionResult, junctions []core.Junction) {
	if len(collisions) == 0 {
		_, _ = goodColor.Println("✓ no collisions")
	} else {
		printHeader("%d collision(s)", len(collisions))
		for _, c := range collisions {
			sev := warnColor
			if c.Severity == core.SeverityHigh {
				sev = badColor
			}
			_, _ = sev.Printf("  [%s] ", c.Severity)
			fmt.Println(c.Description)
		}
	}

	if len(junctions) > 0 {
		printHeader("%d junction(s)", len(junctions))
		for _, j := range junctions {
			_, _ = wireColor.Printf("  %s", j.ID)
			fmt.Printf("  %s at (%d,%d), %d wire(s)\n",
				j.Type, j.Position.X, j.Position.Y, len(j.ConnectedWires))
		}
	}
}
