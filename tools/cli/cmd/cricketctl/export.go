package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/crickstats/stats-api/internal/models"
)

const playersSheet = "Players"

var exportHeader = []interface{}{
	"Player", "Matches", "Total_Runs", "Balls_Faced", "Batting_Average", "Strike_Rate",
	"Fours", "Sixes", "Boundary_Percentage", "Wickets", "Balls_Bowled", "Runs_Conceded",
	"Bowling_Average", "Economy",
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the player stats table to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players := a.stats.Players()
			if err := exportPlayers(out, players); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d players to %s\n", len(players), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "players.xlsx", "output workbook")
	return cmd
}

// exportPlayers writes one row per player with a frozen header row.
func exportPlayers(path string, players []models.PlayerAggregate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), playersSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(playersSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, p := range players {
		row := []interface{}{
			p.Player, p.Matches, p.TotalRuns, p.BallsFaced, p.BattingAverage, p.StrikeRate,
			p.Fours, p.Sixes, p.BoundaryPercentage, p.Wickets, p.BallsBowled, p.RunsConceded,
			p.BowlingAverage, p.Economy,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(playersSheet, cell, &row); err != nil {
			return fmt.Errorf("player %q: %w", p.Player, err)
		}
	}

	if err := f.SetPanes(playersSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.SaveAs(path)
}
