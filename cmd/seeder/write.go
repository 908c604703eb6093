package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/models"
)

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func matchRow(m models.Match) []string {
	fields := map[string]string{
		"Id":              m.ID,
		"Season":          m.Season,
		"Team1":           m.Team1,
		"Team2":           m.Team2,
		"Venue":           m.Venue,
		"Toss_Winner":     m.TossWinner,
		"Toss_Decision":   m.TossDecision,
		"Match_Type":      m.MatchType,
		"Team1_Runs":      strconv.Itoa(m.Team1Runs),
		"Team1_Wickets":   strconv.Itoa(m.Team1Wickets),
		"Team2_Runs":      strconv.Itoa(m.Team2Runs),
		"Team2_Wickets":   strconv.Itoa(m.Team2Wickets),
		"Winner":          m.Winner,
		"Date":            m.Date.Format("2006-01-02"),
		"Super_Over":      yesNo(m.SuperOver),
		"Result":          m.Result,
		"Player_Of_Match": m.PlayerOfMatch,
		"Match_No":        m.MatchNo,
	}
	return ordered(dataset.MatchColumns, fields)
}

func deliveryRow(d models.Delivery) []string {
	wicket := "0"
	if d.IsWicket {
		wicket = "1"
	}
	fields := map[string]string{
		"Match_Id":         d.MatchID,
		"Inning":           strconv.Itoa(d.Inning),
		"Over":             strconv.Itoa(d.Over),
		"Ball":             strconv.Itoa(d.Ball),
		"Batter":           d.Batter,
		"Bowler":           d.Bowler,
		"Non_Striker":      d.NonStriker,
		"Batting_Team":     d.BattingTeam,
		"Bowling_Team":     d.BowlingTeam,
		"Batsman_Runs":     strconv.Itoa(d.BatsmanRuns),
		"Extra_Runs":       strconv.Itoa(d.ExtraRuns),
		"Total_Runs":       strconv.Itoa(d.TotalRuns),
		"Is_Wicket":        wicket,
		"Dismissal_Kind":   d.DismissalKind,
		"Player_Dismissed": d.PlayerDismissed,
		"Fielder":          d.Fielder,
		"Extras_Type":      d.ExtrasType,
	}
	return ordered(dataset.DeliveryColumns, fields)
}

func ordered(columns []string, fields map[string]string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = fields[c]
	}
	return row
}

func tables(g *generator) (matches, deliveries [][]string) {
	matches = [][]string{dataset.MatchColumns}
	for _, m := range g.matches {
		matches = append(matches, matchRow(m))
	}
	deliveries = [][]string{dataset.DeliveryColumns}
	for _, d := range g.deliveries {
		deliveries = append(deliveries, deliveryRow(d))
	}
	return matches, deliveries
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", path, i+1, err)
		}
	}
	return f.SaveAs(path)
}

// write saves matches and deliveries under dir in the given format.
func write(g *generator, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	matches, deliveries := tables(g)

	var save func(string, [][]string) error
	switch format {
	case "csv":
		save = writeCSV
	case "xlsx":
		save = writeXLSX
	default:
		return nil, fmt.Errorf("unknown format %q (want csv or xlsx)", format)
	}

	paths := []string{
		filepath.Join(dir, "matches."+format),
		filepath.Join(dir, "deliveries."+format),
	}
	if err := save(paths[0], matches); err != nil {
		return nil, err
	}
	if err := save(paths[1], deliveries); err != nil {
		return nil, err
	}
	return paths, nil
}
