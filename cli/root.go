// Package cli implements the wiregrid command line front-end: load a diagram
// description, route its connections and report collisions and junctions.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	gridSize   int
)

// rootCmd is the root command for wiregrid.
var rootCmd = &cobra.Command{
	Use:   "wiregrid",
	Short: "Orthogonal wire routing for diagram files",
	Long: `wiregrid routes the connections of a diagram around its components
using orthogonal (Manhattan) paths, then reports route quality, collisions
and junctions.

Diagrams are JSON files with components, connections and a canvas rectangle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON")
	rootCmd.PersistentFlags().IntVar(&gridSize, "grid-size", 10, "routing grid resolution in canvas units")

	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
