package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crickstats/stats-api/internal/models"
)

func samplePlayers() []models.PlayerAggregate {
	// Sorted by name, as BuildPlayerStats returns them.
	return []models.PlayerAggregate{
		{Player: "AllR1", TotalRuns: 300, BallsFaced: 200, Wickets: 10},
		{Player: "AllR2", TotalRuns: 250, BallsFaced: 200, Wickets: 4},
		{Player: "Bat1", TotalRuns: 900, BallsFaced: 600},
		{Player: "Bat2", TotalRuns: 800, BallsFaced: 600},
		{Player: "Bat3", TotalRuns: 700, BallsFaced: 600},
		{Player: "Bat4", TotalRuns: 600, BallsFaced: 600},
		{Player: "Bat5", TotalRuns: 500, BallsFaced: 600, Wickets: 1},
		{Player: "Bowl1", Wickets: 40},
		{Player: "Bowl2", Wickets: 30, TotalRuns: 10, BallsFaced: 20},
		{Player: "Bowl3", Wickets: 20},
		{Player: "Bowl4", Wickets: 20},
	}
}

func TestTopRunScorers(t *testing.T) {
	got := TopRunScorers(samplePlayers(), 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Bat1", got[0].Player)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Bat3", got[2].Player)
	assert.Equal(t, 3, got[2].Rank)
}

func TestTopWicketTakersTiesByName(t *testing.T) {
	got := TopWicketTakers(samplePlayers(), 4)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"Bowl1", "Bowl2", "Bowl3", "Bowl4"},
		[]string{got[0].Player, got[1].Player, got[2].Player, got[3].Player})
}

func TestMostSuccessfulTeamsExcludesNoResult(t *testing.T) {
	got := MostSuccessfulTeams(sampleMatches(), 10)
	assert.Equal(t, []models.TeamWins{
		{Rank: 1, Team: "B", Wins: 2},
		{Rank: 2, Team: "A", Wins: 1},
	}, got)
}

func TestChampions(t *testing.T) {
	ms := sampleMatches()
	undecided := match("5", "2012", "A", "B", "Z", "A", models.TossBat, models.NoResult, 0, 0)
	undecided.MatchType = models.MatchTypeFinal
	ms = append(ms, undecided)

	got := Champions(ms)
	assert.Equal(t, []models.Champion{{Season: "2011", Winner: "B", RunnerUp: "C", Venue: "X"}}, got)
}

func TestEraComparison(t *testing.T) {
	seasons := map[string]string{"1": "2010", "2": "2010", "3": "2010", "4": "2011"}
	got := EraComparison(sampleMatches(), sampleDeliveries(), func(id string) string { return seasons[id] })

	require.Len(t, got, len(Eras))
	assert.Equal(t, "2008-2012", got[0].Era.Label)
	assert.Equal(t, 4, got[0].Matches)
	assert.Equal(t, 2, got[0].TotalSixes)
	assert.InDelta(t, 3.0/4, got[0].BoundariesPerMatch, 1e-9)
	assert.Equal(t, 0, got[2].Matches)
	assert.Equal(t, 0.0, got[2].AvgRunsPerMatch)
}

func TestDreamXI(t *testing.T) {
	xi := DreamXI(samplePlayers())

	roles := map[string][]string{}
	seen := map[string]bool{}
	for _, p := range xi.Players {
		assert.False(t, seen[p.Player], "duplicate pick %s", p.Player)
		seen[p.Player] = true
		roles[p.Role] = append(roles[p.Role], p.Player)
	}

	assert.Equal(t, []string{"Bat1", "Bat2", "Bat3", "Bat4", "Bat5"}, roles[models.RoleBatter])
	// Top seven scorers are Bat1-5, AllR1, AllR2; Bat5 already picked.
	assert.Equal(t, []string{"AllR1", "AllR2"}, roles[models.RoleAllRounder])
	assert.Equal(t, []string{"Bowl1", "Bowl2", "Bowl3"}, roles[models.RoleBowler])
	assert.Len(t, xi.Players, 10)

	again := DreamXI(samplePlayers())
	assert.Equal(t, xi, again, "selection is deterministic")
}

func TestCompare(t *testing.T) {
	matches := sampleMatches()

	s := CompareSeason(matches, "2010")
	assert.Equal(t, 3, s.Matches)
	assert.InDelta(t, 200.0/3, s.TossBatPercentage, 1e-9)

	tm := CompareTeam(matches, "A")
	assert.Equal(t, 3, tm.Matches)
	assert.InDelta(t, 100.0/3, tm.WinPercentage, 1e-9)
	assert.InDelta(t, 140.0, tm.AvgScore, 1e-9)
	assert.InDelta(t, 200.0/3, tm.TossWinPercent, 1e-9)

	b := CompareBatter(sampleDeliveries(), "P1")
	assert.Equal(t, 12, b.Runs)
	assert.Equal(t, 5, b.BallsFaced)
	assert.InDelta(t, 6.0, b.RunsPerMatch, 1e-9)
}

func TestListMatches(t *testing.T) {
	matches := sampleMatches()

	tests := []struct {
		name    string
		filter  MatchFilter
		wantIDs []string
	}{
		{name: "All", filter: MatchFilter{}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "Season", filter: MatchFilter{Season: "2011"}, wantIDs: []string{"4"}},
		{name: "Team", filter: MatchFilter{Team: "C"}, wantIDs: []string{"3", "4"}},
		{name: "Head To Head", filter: MatchFilter{Team: "A", Opponent: "B"}, wantIDs: []string{"1", "2"}},
		{name: "None", filter: MatchFilter{Team: "Z"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := ListMatches(matches, tt.filter)
			ids := make([]string, len(cards))
			for i, c := range cards {
				ids[i] = c.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	cards := ListMatches(matches, MatchFilter{Season: "2010"})
	assert.Equal(t, "180/5", cards[0].Team1Score)
	assert.Equal(t, "2010-03-01", cards[0].Date)
}
