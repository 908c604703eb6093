package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crickstats/stats-api/internal/ml"
)

func newPredictCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "predict TEAM1 TEAM2 VENUE",
		Short: "Win probabilities for a fixture",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == args[1] {
				return fmt.Errorf("teams must differ")
			}
			opts := ml.DefaultPredictorOptions()
			opts.LiveFeatures = a.liveFeature
			p := ml.NewWinPredictor(opts, a.logger)
			p.Train(a.ds.Matches, a.ds.Deliveries)
			return printJSON(cmd.OutOrStdout(), p.Predict(args[0], args[1], args[2]))
		},
	}
}

func newSimilarCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "similar PLAYER",
		Short: "Players with the most similar batting profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := ml.NewSimilarityEngine(a.logger)
			if err := e.Build(ml.FeatureTableFromStats(a.stats.Players())); err != nil {
				return err
			}
			similar, ok := e.FindSimilar(args[0], n)
			if !ok {
				return fmt.Errorf("no similarity data for %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), similar)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 5, "number of players")
	return cmd
}

func newTeamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team NAME",
		Short: "Team performance summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perf, err := a.stats.TeamPerformance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), perf)
		},
	}
}

func newVenueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "venue NAME",
		Short: "Venue statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.stats.VenueStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}

func newSeasonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "season LABEL",
		Short: "Season summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.stats.SeasonSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
}

func newPvtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pvt PLAYER TEAM",
		Short: "A batter's record against one team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.stats.PlayerVsTeam(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), st)
		},
	}
}

func newRecordsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:       "records batting|bowling|teams|champions|eras|dreamxi",
		Short:     "All-time records",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"batting", "bowling", "teams", "champions", "eras", "dreamxi"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				out interface{}
				err error
			)
			switch args[0] {
			case "batting":
				out, err = a.stats.TopRunScorers(ctx, limit)
			case "bowling":
				out, err = a.stats.TopWicketTakers(ctx, limit)
			case "teams":
				out, err = a.stats.MostSuccessfulTeams(ctx, limit)
			case "champions":
				out, err = a.stats.Champions(ctx)
			case "eras":
				out, err = a.stats.EraComparison(ctx)
			case "dreamxi":
				out, err = a.stats.DreamXI(ctx)
			default:
				return fmt.Errorf("unknown record kind %q", args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "rows for leaderboards")
	return cmd
}
