package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentic-research/pathgraph/internal/config"
	"github.com/agentic-research/pathgraph/internal/graph"
	"github.com/agentic-research/pathgraph/internal/report"
	"github.com/agentic-research/pathgraph/internal/store"
)

var (
	configPath    string
	dumpResponses bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the navigation graph and persist it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx := cmd.Context()
		client, err := report.NewClient(ctx, cfg.ViewID, cfg.KeyFile, cfg.StartDate)
		if err != nil {
			return err
		}
		var source report.Source = client
		if dumpResponses {
			source = report.Dumped(source, cmd.OutOrStdout())
		}

		start := time.Now()
		fmt.Printf("Extracting view %s since %s...\n", cfg.ViewID, cfg.StartDate)
		g, err := report.NewPaginator(source, logger).FetchAll(ctx)
		if err != nil {
			return err
		}

		if err := store.SaveCSV(g, cfg.Output.Paths, cfg.Output.Connections); err != nil {
			return err
		}
		if cfg.Output.Database != "" {
			if err := store.Save(cfg.Output.Database, g); err != nil {
				return err
			}
		}

		stats := graph.Stats(g)
		fmt.Printf("Done in %v: %d paths, %d connections (%d pageviews).\n",
			time.Since(start), stats.PathCount, stats.ConnectionCount, stats.TotalCount)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&configPath, "config", "c", "pathgraph.hcl", "Path to run configuration")
	extractCmd.Flags().BoolVar(&dumpResponses, "dump-response", false, "Print every raw report page as it is fetched")
	rootCmd.AddCommand(extractCmd)
}
