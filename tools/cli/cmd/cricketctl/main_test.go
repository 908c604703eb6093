package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/models"
)

func writeFixture(t *testing.T, dir, name string, header []string, rows ...map[string]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.Write(header))
	for _, r := range rows {
		line := make([]string, len(header))
		for i, h := range header {
			line[i] = r[h]
		}
		require.NoError(t, w.Write(line))
	}
	w.Flush()
	require.NoError(t, w.Error())
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "matches.csv", dataset.MatchColumns,
		map[string]string{"Id": "1", "Season": "2010", "Team1": "A", "Team2": "B", "Venue": "X", "Toss_Winner": "A", "Toss_Decision": "Bat", "Team1_Runs": "10", "Team2_Runs": "4", "Winner": "A", "Date": "2010-04-01"},
		map[string]string{"Id": "2", "Season": "2010", "Team1": "B", "Team2": "A", "Venue": "X", "Toss_Winner": "B", "Toss_Decision": "Field", "Team1_Runs": "8", "Team2_Runs": "9", "Winner": "A", "Date": "2010-04-02"},
	)
	writeFixture(t, dir, "deliveries.csv", dataset.DeliveryColumns,
		map[string]string{"Match_Id": "1", "Inning": "1", "Batter": "P1", "Bowler": "Q1", "Batting_Team": "A", "Bowling_Team": "B", "Batsman_Runs": "6", "Total_Runs": "6", "Is_Wicket": "0"},
		map[string]string{"Match_Id": "1", "Inning": "1", "Batter": "P1", "Bowler": "Q1", "Batting_Team": "A", "Bowling_Team": "B", "Batsman_Runs": "4", "Total_Runs": "4", "Is_Wicket": "0"},
		map[string]string{"Match_Id": "1", "Inning": "2", "Batter": "Q1", "Bowler": "P1", "Batting_Team": "B", "Bowling_Team": "A", "Batsman_Runs": "4", "Total_Runs": "4", "Is_Wicket": "0"},
		map[string]string{"Match_Id": "1", "Inning": "2", "Batter": "Q1", "Bowler": "P1", "Batting_Team": "B", "Bowling_Team": "A", "Is_Wicket": "1", "Dismissal_Kind": "bowled", "Player_Dismissed": "Q1"},
		map[string]string{"Match_Id": "2", "Inning": "2", "Batter": "P1", "Bowler": "Q1", "Batting_Team": "A", "Bowling_Team": "B", "Batsman_Runs": "1", "Total_Runs": "1", "Is_Wicket": "0"},
	)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTeamCommand(t *testing.T) {
	dir := fixtureDir(t)
	out, err := run(t, "team", "A", "--data-dir", dir)
	require.NoError(t, err)

	var perf models.TeamPerformance
	require.NoError(t, json.Unmarshal([]byte(out), &perf))
	assert.Equal(t, 2, perf.TotalMatches)
	assert.Equal(t, 2, perf.Wins)

	_, err = run(t, "team", "Nobody", "--data-dir", dir)
	assert.Error(t, err)
}

func TestPredictCommand(t *testing.T) {
	dir := fixtureDir(t)
	out, err := run(t, "predict", "A", "B", "X", "--data-dir", dir)
	require.NoError(t, err)

	var p models.WinProbability
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, models.MethodHeuristic, p.Method)
	assert.InDelta(t, 100, p.Team1Prob, 1e-9)

	_, err = run(t, "predict", "A", "A", "X", "--data-dir", dir)
	assert.Error(t, err)
}

func TestRecordsCommand(t *testing.T) {
	dir := fixtureDir(t)
	out, err := run(t, "records", "batting", "--limit", "1", "--data-dir", dir)
	require.NoError(t, err)

	var rows []models.RunScorer
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].Player)
	assert.Equal(t, 11, rows[0].Runs)

	_, err = run(t, "records", "fielding", "--data-dir", dir)
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := fixtureDir(t)
	path := filepath.Join(t.TempDir(), "players.xlsx")
	_, err := run(t, "export", "--out", path, "--data-dir", dir)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(playersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Player", rows[0][0])
	assert.Equal(t, "P1", rows[1][0])
	assert.Equal(t, "11", rows[1][2])
}

func TestMissingData(t *testing.T) {
	_, err := run(t, "team", "A", "--data-dir", t.TempDir())
	assert.Error(t, err)
}
