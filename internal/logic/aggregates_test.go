package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crickstats/stats-api/internal/models"
)

func TestTeamPerformance(t *testing.T) {
	matches := sampleMatches()

	tests := []struct {
		name      string
		team      string
		wantOK    bool
		wantTotal int
		wantWins  int
		wantHome  float64
		wantAway  float64
		wantToss  float64
	}{
		{name: "Team A", team: "A", wantOK: true, wantTotal: 3, wantWins: 1, wantHome: 50, wantAway: 0, wantToss: 50},
		{name: "Team B", team: "B", wantOK: true, wantTotal: 3, wantWins: 2, wantHome: 100, wantAway: 50, wantToss: 100},
		{name: "Unknown", team: "Z", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := TeamPerformance(matches, tt.team)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, p)
				return
			}
			assert.Equal(t, tt.wantTotal, p.TotalMatches)
			assert.Equal(t, tt.wantWins, p.Wins)
			assert.Equal(t, p.TotalMatches, p.Wins+p.Losses)
			assert.Equal(t, p.TotalMatches, p.HomeMatches+p.AwayMatches)
			assert.InDelta(t, tt.wantHome, p.HomeWinPercentage, 1e-9)
			assert.InDelta(t, tt.wantAway, p.AwayWinPercentage, 1e-9)
			assert.InDelta(t, tt.wantToss, p.TossImpact, 1e-9)
			for _, pct := range []float64{p.WinPercentage, p.HomeWinPercentage, p.AwayWinPercentage, p.TossImpact} {
				assert.GreaterOrEqual(t, pct, 0.0)
				assert.LessOrEqual(t, pct, 100.0)
			}
		})
	}
}

func TestTeamPerformanceNoResultIsLoss(t *testing.T) {
	p, ok := TeamPerformance(sampleMatches(), "C")
	require.True(t, ok)
	assert.Equal(t, 2, p.TotalMatches)
	assert.Equal(t, 0, p.Wins)
	assert.Equal(t, 2, p.Losses)
	assert.Equal(t, 0.0, p.TossImpact, "toss won in match 3 but no result")
}

func TestVenueStats(t *testing.T) {
	v, ok := VenueStats(sampleMatches(), "X")
	require.True(t, ok)

	assert.Equal(t, 3, v.TotalMatches)
	// Team1 mean (180+160+170)/3 = 170, Team2 mean (150+140+171)/3 = 153.667
	assert.InDelta(t, (170.0+461.0/3)/2, v.AvgRunsPerMatch, 1e-9)
	assert.InDelta(t, 6.0, v.AvgWicketsPerMatch, 1e-9)
	assert.Equal(t, 1, v.TossBatFirst)
	assert.Equal(t, 1, v.SuperOvers)
	assert.Equal(t, "B", v.MostSuccessfulTeam)
	assert.Equal(t, 2, v.MostSuccessfulWins)
	// Match 1: toss A bat, A won.
	assert.InDelta(t, 100.0, v.BatFirstWinPercentage, 1e-9)
	// Field decisions: match 2 (toss A, winner B), match 4 (toss B, winner B) -> 1 of 2.
	assert.InDelta(t, 50.0, v.FieldFirstWinPct, 1e-9)
	assert.Equal(t, []models.SeasonCount{{Season: "2010", Matches: 2}, {Season: "2011", Matches: 1}}, v.MatchesBySeason)
}

func TestVenueStatsTieBreaksOnFirstWinner(t *testing.T) {
	matches := []models.Match{
		match("1", "2010", "A", "B", "V", "A", models.TossBat, "B", 1, 2),
		match("2", "2010", "A", "B", "V", "A", models.TossBat, "A", 2, 1),
	}
	v, ok := VenueStats(matches, "V")
	require.True(t, ok)
	assert.Equal(t, "B", v.MostSuccessfulTeam)
	assert.Equal(t, 1, v.MostSuccessfulWins)
}

func TestVenueStatsNoDecisiveMatches(t *testing.T) {
	matches := []models.Match{
		match("1", "2010", "A", "B", "V", "A", models.UnknownToss, models.NoResult, 0, 0),
	}
	v, ok := VenueStats(matches, "V")
	require.True(t, ok)
	assert.Equal(t, models.NotAvailable, v.MostSuccessfulTeam)
	assert.Equal(t, 0, v.MostSuccessfulWins)
	assert.Equal(t, 0.0, v.BatFirstWinPercentage)
	assert.Equal(t, 0.0, v.FieldFirstWinPct)

	_, ok = VenueStats(matches, "Nowhere")
	assert.False(t, ok)
}

func TestVenuePitch(t *testing.T) {
	p := VenuePitch(sampleDeliveries(), map[string]struct{}{"1": {}})
	// Six deliveries in match 1, one wide.
	assert.Equal(t, 5, p.Balls)
	assert.InDelta(t, 12.0/5, p.RunsPerBall, 1e-9)
	assert.InDelta(t, 2.0/5, p.WicketsPerBall, 1e-9)
	assert.InDelta(t, 40.0, p.BoundaryPercentage, 1e-9)
}

func TestPlayerVsTeam(t *testing.T) {
	s := PlayerVsTeam(sampleDeliveries(), "P1", "B")
	require.True(t, s.Found)

	assert.Equal(t, 12, s.TotalRuns)
	assert.Equal(t, 5, s.BallsFaced, "wide is not a ball faced")
	assert.InDelta(t, 240.0, s.StrikeRate, 1e-9)
	assert.Equal(t, 2, s.Dismissals)
	assert.InDelta(t, 6.0, s.Average, 1e-9)
	assert.Equal(t, 2, s.Boundaries)
	assert.Equal(t, 1, s.Sixes)
	assert.Equal(t, 1, s.Fours)
	assert.Equal(t, 2, s.MatchesPlayed)
	assert.Equal(t, 2, s.Innings)
	assert.Equal(t, 10, s.BestScore)
	assert.Equal(t, map[string]int{"Caught": 1, "Bowled": 1}, s.DismissalTypes)
}

func TestPlayerVsTeamNoDataVsZero(t *testing.T) {
	none := PlayerVsTeam(sampleDeliveries(), "P1", "C")
	assert.False(t, none.Found)
	assert.Equal(t, 0, none.TotalRuns)

	// Faced the team but never scored.
	ds := []models.Delivery{ball("9", 1, "Z1", "K1", "A", "B", 0)}
	zero := PlayerVsTeam(ds, "Z1", "B")
	assert.True(t, zero.Found)
	assert.Equal(t, 0, zero.TotalRuns)
	assert.Equal(t, 0.0, zero.Average, "zero runs and zero dismissals average to 0")
	assert.Equal(t, 1, zero.BallsFaced)
}

func TestPlayerVsTeamRawAverage(t *testing.T) {
	ds := []models.Delivery{
		ball("9", 1, "Z1", "K1", "A", "B", 4),
		ball("9", 1, "Z1", "K1", "A", "B", 3),
	}
	s := PlayerVsTeam(ds, "Z1", "B")
	assert.Equal(t, 0, s.Dismissals)
	assert.InDelta(t, 7.0, s.Average, 1e-9, "no dismissals falls back to raw runs")
}

func TestSeasonSummary(t *testing.T) {
	matches := sampleMatches()
	deliveries := sampleDeliveries()

	t.Run("No Final", func(t *testing.T) {
		s, ok := SeasonSummary(matches, deliveries, "2010")
		require.True(t, ok)
		assert.Equal(t, 3, s.TotalMatches)
		assert.Equal(t, models.NotAvailable, s.Champion)
		assert.Equal(t, models.NotAvailable, s.RunnerUp)
		assert.Equal(t, 180, s.HighestScore)
		assert.Equal(t, 1, s.TotalSixes)
		assert.Equal(t, 1, s.TotalFours)
		assert.Equal(t, 2, s.TotalBoundaries)
		assert.InDelta(t, 2.0/3, s.BoundariesPerMatch, 1e-9)
		// Match 1 toss A winner A; match 2 toss A winner B; match 3 no result.
		assert.InDelta(t, 100.0/3, s.TossWinImpact, 1e-9)
		require.NotEmpty(t, s.TopBatters)
		assert.Equal(t, "P1", s.TopBatters[0].Player)
		require.Len(t, s.TopBowlers, 1, "run outs are not credited")
		assert.Equal(t, models.BowlerTally{Player: "K1", Wickets: 2}, s.TopBowlers[0])
	})

	t.Run("Final", func(t *testing.T) {
		s, ok := SeasonSummary(matches, deliveries, "2011")
		require.True(t, ok)
		assert.Equal(t, "B", s.Champion)
		assert.Equal(t, "C", s.RunnerUp)
		assert.Equal(t, "X", s.FinalVenue)
		assert.Equal(t, 1, s.SuperOvers)
	})

	t.Run("Final Without Winner", func(t *testing.T) {
		ms := sampleMatches()
		ms[3].Winner = models.NoResult
		s, ok := SeasonSummary(ms, deliveries, "2011")
		require.True(t, ok)
		assert.Equal(t, models.NotAvailable, s.Champion)
	})

	t.Run("Unknown Season", func(t *testing.T) {
		_, ok := SeasonSummary(matches, deliveries, "1999")
		assert.False(t, ok)
	})
}

func TestSeasonMetrics(t *testing.T) {
	got := SeasonMetrics(sampleMatches())
	require.Len(t, got, 2)
	assert.Equal(t, "2010", got[0].Season)
	assert.Equal(t, 3, got[0].Matches)
	assert.InDelta(t, (330.0+300.0+100.0)/3, got[0].AvgRunsPerMatch, 1e-9)
	assert.InDelta(t, 12.0, got[0].AvgWicketsPerMatch, 1e-9)
	assert.Equal(t, 1, got[1].SuperOvers)
}

func TestPercentHelpers(t *testing.T) {
	assert.Equal(t, 0.0, percent(5, 0))
	assert.Equal(t, 50.0, percent(1, 2))
	assert.Equal(t, 0.0, ratio(3, 0))
	assert.Equal(t, 3.0, average(3, 0))
	assert.Equal(t, 0.0, average(0, 0))
	assert.Equal(t, 1.5, average(3, 2))
}
