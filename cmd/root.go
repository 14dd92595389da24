package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "pathgraph",
	Short: "Pathgraph: navigation graph extraction from Google Analytics",
	Long: `Pathgraph extracts a navigation graph from a Google Analytics view:
the distinct page paths visitors hit, and how often they moved from one
to another. The graph is persisted as CSV (and optionally SQLite) for
downstream visualization and flow ranking.`,
}

// newLogger builds the run logger. Debug output is opt-in; the default
// production config keeps the pipeline quiet.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
