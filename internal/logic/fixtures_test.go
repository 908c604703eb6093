package logic

import (
	"time"

	"github.com/crickstats/stats-api/internal/models"
)

func day(d int) time.Time {
	return time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func match(id, season, t1, t2, venue, tossWinner, decision, winner string, r1, r2 int) models.Match {
	return models.Match{
		ID:           id,
		Season:       season,
		Date:         day(len(id)),
		MatchType:    "League",
		Venue:        venue,
		Team1:        t1,
		Team2:        t2,
		TossWinner:   tossWinner,
		TossDecision: decision,
		Team1Runs:    r1,
		Team1Wickets: 5,
		Team2Runs:    r2,
		Team2Wickets: 7,
		Winner:       winner,
	}
}

// sampleMatches:
//
//	1  2010 A v B @ X  toss A bat   -> A
//	2  2010 B v A @ X  toss A field -> B
//	3  2010 A v C @ Y  toss C bat   -> No Result
//	4  2011 C v B @ X  toss B field -> B  (final)
func sampleMatches() []models.Match {
	ms := []models.Match{
		match("1", "2010", "A", "B", "X", "A", models.TossBat, "A", 180, 150),
		match("2", "2010", "B", "A", "X", "A", models.TossField, "B", 160, 140),
		match("3", "2010", "A", "C", "Y", "C", models.TossBat, models.NoResult, 100, 0),
		match("4", "2011", "C", "B", "X", "B", models.TossField, "B", 170, 171),
	}
	ms[3].MatchType = models.MatchTypeFinal
	ms[3].SuperOver = true
	for i := range ms {
		ms[i].Date = day(i)
	}
	return ms
}

func ball(matchID string, inning int, batter, bowler, battingTeam, bowlingTeam string, runs int) models.Delivery {
	return models.Delivery{
		MatchID:     matchID,
		Inning:      inning,
		Batter:      batter,
		Bowler:      bowler,
		BattingTeam: battingTeam,
		BowlingTeam: bowlingTeam,
		BatsmanRuns: runs,
		TotalRuns:   runs,
	}
}

func wicket(d models.Delivery, kind string) models.Delivery {
	d.IsWicket = true
	d.DismissalKind = kind
	d.PlayerDismissed = d.Batter
	return d
}

func extra(d models.Delivery, kind string, runs int) models.Delivery {
	d.ExtrasType = kind
	d.ExtraRuns = runs
	d.TotalRuns += runs
	return d
}

// sampleDeliveries: P1 bats for A against B in matches 1 and 2, P2 bats for
// B, K1 bowls for B, K2 for A.
func sampleDeliveries() []models.Delivery {
	return []models.Delivery{
		ball("1", 1, "P1", "K1", "A", "B", 4),
		ball("1", 1, "P1", "K1", "A", "B", 6),
		extra(ball("1", 1, "P1", "K1", "A", "B", 0), models.ExtrasWides, 1),
		wicket(ball("1", 1, "P1", "K1", "A", "B", 0), "Caught"),
		ball("1", 2, "P2", "K2", "B", "A", 1),
		wicket(ball("1", 2, "P2", "K2", "B", "A", 0), "Run Out"),
		ball("2", 2, "P1", "K1", "A", "B", 2),
		wicket(ball("2", 2, "P1", "K1", "A", "B", 0), "Bowled"),
		ball("4", 1, "P2", "K3", "B", "C", 6),
	}
}
