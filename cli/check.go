package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wiregrid/core"
	"wiregrid/junction"
)

var fix bool

var checkCmd = &cobra.Command{
	Use:   "check <diagram.json>",
	Short: "Report collisions and junctions in a routed diagram",
	Long: `Route the diagram, run collision detection and junction analysis, and
print a report. Exits non-zero when any high-severity collision remains.

With --fix, colliding wires are re-routed first and only the remaining
collisions are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDiagram(args[0])
		if err != nil {
			return err
		}

		eng, wires := routeDiagram(d)

		if fix {
			for _, r := range eng.RerouteCollidingWires() {
				if r.Success {
					eng.ReplaceWire(*r.NewRoute)
				}
			}
			wires = eng.Wires()
		}

		collisions := eng.DetectCollisions()

		jm := junction.NewManager(junction.DefaultConfig())
		for _, w := range wires {
			jm.AddWire(w.ID, w.Segments)
		}
		jm.OptimizeJunctions()
		junctions := jm.Junctions()

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			report := struct {
				Collisions []core.CollisionResult `json:"collisions"`
				Junctions  []core.Junction        `json:"junctions"`
			}{collisions, junctions}
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			printReport(collisions, junctions)
		}

		if n := highSeverityCount(collisions); n > 0 {
			return fmt.Errorf("%d high-severity collision(s) detected", n)
		}
		return nil
	},
}

func highSeverityCount(collisions []core.CollisionResult) int {
	n := 0
	for _, c := range collisions {
		if c.Severity == core.SeverityHigh {
			n++
		}
	}
	return n
}

func init() {
	checkCmd.Flags().BoolVar(&fix, "fix", false, "re-route colliding wires before reporting")
}
