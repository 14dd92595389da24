package cmd

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/pathgraph/api"
	"github.com/agentic-research/pathgraph/internal/graph"
	"github.com/agentic-research/pathgraph/internal/store"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [graph.db | paths.csv connections.csv]",
	Short: "Print a previously extracted graph",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var g *api.Graph
		var err error
		if len(args) == 1 {
			if !strings.HasSuffix(args[0], ".db") {
				return fmt.Errorf("expected a .db snapshot or a paths/connections CSV pair")
			}
			g, err = store.Load(args[0])
		} else {
			g, err = store.LoadCSV(args[0], args[1])
		}
		if err != nil {
			return err
		}

		if showJSON {
			fmt.Println(oj.JSON(g, 2))
			return nil
		}

		for i, p := range g.Paths {
			fmt.Printf("%4d  %s\n", i, p)
		}
		for _, c := range g.Connections {
			if c.From >= len(g.Paths) || c.To >= len(g.Paths) {
				fmt.Printf("%d -> %d  %d (dangling index)\n", c.From, c.To, c.Count)
				continue
			}
			fmt.Printf("%s -> %s  %d\n", g.Paths[c.From], g.Paths[c.To], c.Count)
		}
		stats := graph.Stats(g)
		fmt.Printf("%d paths, %d connections, %d sources, %d targets, %d pageviews\n",
			stats.PathCount, stats.ConnectionCount,
			stats.DistinctSources, stats.DistinctTargets, stats.TotalCount)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Dump the graph as JSON")
	rootCmd.AddCommand(showCmd)
}
