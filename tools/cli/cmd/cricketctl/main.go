// Command cricketctl answers the API's questions offline, straight from
// the dataset files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/cache"
	"github.com/crickstats/stats-api/internal/config"
	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/logic"
)

// app holds the state shared by every subcommand.
type app struct {
	dataDir     string
	matches     string
	deliveries  string
	verbose     bool
	liveFeature bool

	logger *zap.Logger
	ds     *dataset.Dataset
	stats  logic.StatsService
}

func (a *app) load(ctx context.Context) error {
	if a.ds != nil {
		return nil
	}
	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	} else {
		a.logger = zap.NewNop()
	}

	a.ds, err = dataset.Load(ctx, filepath.Join(a.dataDir, a.matches), filepath.Join(a.dataDir, a.deliveries))
	if err != nil {
		return err
	}
	a.stats = logic.NewStatsService(a.ds, cache.NewMemoryStore(time.Hour), a.logger)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	// Defaults come from the same environment the API reads.
	defaults, err := config.Load()
	if err != nil {
		defaults = &config.Config{DataDir: "./data/cleaned", MatchesFile: "matches.csv", DeliveriesFile: "deliveries.csv", LiveFeatures: true}
	}

	root := &cobra.Command{
		Use:           "cricketctl",
		Short:         "Query league statistics from local dataset files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", defaults.DataDir, "directory holding the dataset files")
	root.PersistentFlags().StringVar(&a.matches, "matches", defaults.MatchesFile, "matches file name (.csv or .xlsx)")
	root.PersistentFlags().StringVar(&a.deliveries, "deliveries", defaults.DeliveriesFile, "deliveries file name (.csv or .xlsx)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().BoolVar(&a.liveFeature, "live-features", defaults.LiveFeatures, "use the trained model for predictions")

	root.AddCommand(
		newPredictCmd(a),
		newSimilarCmd(a),
		newTeamCmd(a),
		newVenueCmd(a),
		newSeasonCmd(a),
		newPvtCmd(a),
		newRecordsCmd(a),
		newExportCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
