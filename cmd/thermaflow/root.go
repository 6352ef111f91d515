package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/perrongu/thermaflow/observe"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "thermaflow",
	Short: "One-dimensional pipe-flow thermal/hydraulic engine",
	Long: `thermaflow predicts temperature, pressure and heat-loss profiles
along an insulated or bare cylindrical pipe carrying water, and
reports whether and where the water reaches its freezing point.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit solver warnings (transitional-zone notices, correlation fallbacks)")
}

// sinkFromFlags builds the observation sink the run subcommand passes
// into the engine, honoring --verbose.
func sinkFromFlags() observe.Sink {
	if !verbose {
		return observe.Discard
	}
	return observe.NewTinted(os.Stderr)
}
