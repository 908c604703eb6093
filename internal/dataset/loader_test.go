package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/crickstats/stats-api/internal/models"
)

const matchesCSV = `Id,Season,Team1,Team2,Venue,Toss_Winner,Toss_Decision,Match_Type,Team1_Runs,Team1_Wickets,Team2_Runs,Team2_Wickets,Winner,Date,Super_Over,Result,Player_Of_Match,Match_No
1,2008,Alpha,Bravo,Eden,Alpha,Bat,League,180,5,150,9,Alpha,2008-04-18,N,Runs,P1,1
2,2008,Bravo,Charlie,Wankhede,Charlie,,Final,140,8,141,4,,2008-05-30,Y,,,2
`

const deliveriesCSV = `Match_Id,Inning,Over,Ball,Batter,Bowler,Non_Striker,Batting_Team,Bowling_Team,Batsman_Runs,Extra_Runs,Total_Runs,Is_Wicket,Dismissal_Kind,Player_Dismissed,Fielder,Extras_Type
1,1,0,1,P1,B1,P2,Alpha,Bravo,4,0,4,0,,,,
1,1,0,2,P1,B1,P2,Alpha,Bravo,x,1,1,0,,,,Wides
1,1,0,3,P1,B1,P2,Alpha,Bravo,0,0,0,1,Caught,P1,F1,
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	mp := writeFile(t, dir, "matches.csv", matchesCSV)
	dp := writeFile(t, dir, "deliveries.csv", deliveriesCSV)

	ds, err := Load(context.Background(), mp, dp)
	require.NoError(t, err)
	require.Len(t, ds.Matches, 2)
	require.Len(t, ds.Deliveries, 3)

	first := ds.Matches[0]
	assert.Equal(t, "Alpha", first.Winner)
	assert.Equal(t, 330, first.TotalRuns())
	assert.Equal(t, 2008, first.Date.Year())
	assert.False(t, first.SuperOver)

	second := ds.Matches[1]
	assert.Equal(t, models.NoResult, second.Winner)
	assert.Equal(t, models.NoResult, second.Result)
	assert.Equal(t, models.NotAwarded, second.PlayerOfMatch)
	assert.Equal(t, models.UnknownToss, second.TossDecision)
	assert.True(t, second.SuperOver)
	assert.True(t, second.IsFinal())
	assert.False(t, second.HasWinner())

	wide := ds.Deliveries[1]
	assert.Equal(t, 0, wide.BatsmanRuns, "unparseable numerics coerce to 0")
	assert.False(t, wide.IsLegal())
	assert.True(t, ds.Deliveries[2].IsWicket)
	assert.True(t, ds.Deliveries[0].IsFour())

	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, ds.Teams())
	assert.Equal(t, []string{"2008"}, ds.Seasons())
	assert.True(t, ds.HasVenue("Eden"))
	assert.False(t, ds.HasVenue("Lords"))
	assert.Equal(t, "2008", ds.SeasonOf("1"))
	assert.Equal(t, "", ds.SeasonOf("99"))
	assert.Len(t, ds.DeliveriesInSeason("2008"), 3)
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	mp := writeFile(t, dir, "matches.csv", "Id,Season\n1,2008\n")

	_, err := LoadMatches(context.Background(), mp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "Team1")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/m.csv", "/nonexistent/d.csv")
	assert.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matches.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	lines := strings.Split(strings.TrimSpace(matchesCSV), "\n")
	for r, line := range lines {
		cells := strings.Split(line, ",")
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	matches, err := LoadMatches(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Eden", matches[0].Venue)
	assert.Equal(t, models.NoResult, matches[1].Winner)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		wantYear int
	}{
		{"2010-03-12", 2010},
		{"12/03/2011", 2011},
		{"2012-03-12T10:00:00Z", 2012},
		{"garbage", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.wantYear, parseDate(tt.in).Year())
		})
	}
}

func TestLoadCancelled(t *testing.T) {
	dir := t.TempDir()
	dp := writeFile(t, dir, "deliveries.csv", deliveriesCSV)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadDeliveries(ctx, dp)
	assert.ErrorIs(t, err, context.Canceled)
}
