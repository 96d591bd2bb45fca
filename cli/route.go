package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wiregrid/grid"
)

var showGrid bool

var routeCmd = &cobra.Command{
	Use:   "route <diagram.json>",
	Short: "Route every connection in a diagram",
	Long: `Route every connection in the diagram around its components and print
the resulting polylines with their quality scores.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDiagram(args[0])
		if err != nil {
			return err
		}

		eng, wires := routeDiagram(d)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(wires)
		}

		printHeader("Routed %d connection(s)", len(wires))
		for _, w := range wires {
			printWire(w)
		}

		if showGrid {
			v := grid.Visualizer{ShowObstacles: true, ShowWires: true}
			fmt.Println()
			fmt.Print(v.Render(eng.Grid()))
			fmt.Print(v.Legend())
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().BoolVar(&showGrid, "show-grid", false, "print an ASCII view of the routing grid")
}
