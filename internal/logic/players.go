package logic

import (
	"sort"

	"github.com/crickstats/stats-api/internal/models"
)

type battingAcc struct {
	runs, balls, dismissed int
	sixes, fours           int
	matches                map[string]struct{}
}

type bowlingAcc struct {
	wickets, conceded, legalBalls int
	matches                       map[string]struct{}
}

// BuildPlayerStats makes one pass over deliveries and returns a row for every
// batter and every bowler with at least one countable wicket, sorted by name.
// A player with only one side has the other side zeroed.
func BuildPlayerStats(deliveries []models.Delivery) []models.PlayerAggregate {
	batting := make(map[string]*battingAcc)
	bowling := make(map[string]*bowlingAcc)

	for i := range deliveries {
		d := &deliveries[i]

		if d.Batter != "" {
			b := batting[d.Batter]
			if b == nil {
				b = &battingAcc{matches: make(map[string]struct{})}
				batting[d.Batter] = b
			}
			b.runs += d.BatsmanRuns
			b.balls++
			b.matches[d.MatchID] = struct{}{}
			if d.IsWicket {
				b.dismissed++
			}
			switch {
			case d.IsSix():
				b.sixes++
			case d.IsFour():
				b.fours++
			}
		}

		if d.Bowler != "" {
			w := bowling[d.Bowler]
			if w == nil {
				w = &bowlingAcc{matches: make(map[string]struct{})}
				bowling[d.Bowler] = w
			}
			w.conceded += d.TotalRuns
			w.matches[d.MatchID] = struct{}{}
			if d.IsLegal() {
				w.legalBalls++
			}
			if d.IsBowlerWicket() {
				w.wickets++
			}
		}
	}

	rows := make(map[string]*models.PlayerAggregate, len(batting))
	for name, b := range batting {
		boundaries := b.sixes + b.fours
		rows[name] = &models.PlayerAggregate{
			Player:             name,
			TotalRuns:          b.runs,
			AvgRunsPerBall:     ratio(b.runs, b.balls),
			BallsFaced:         b.balls,
			Matches:            len(b.matches),
			TimesDismissed:     b.dismissed,
			Boundaries:         boundaries,
			Sixes:              b.sixes,
			Fours:              b.fours,
			BattingAverage:     average(b.runs, b.dismissed),
			StrikeRate:         percent(b.runs, b.balls),
			BoundaryPercentage: percent(boundaries, b.balls),
		}
	}

	for name, w := range bowling {
		if w.wickets == 0 {
			continue
		}
		row := rows[name]
		if row == nil {
			row = &models.PlayerAggregate{Player: name}
			rows[name] = row
		}
		row.Wickets = w.wickets
		row.RunsConceded = w.conceded
		row.BallsBowled = w.legalBalls
		row.MatchesBowled = len(w.matches)
		row.BowlingAverage = average(w.conceded, w.wickets)
		if w.legalBalls > 0 {
			row.Economy = float64(w.conceded) / (float64(w.legalBalls) / 6)
		}
	}

	out := make([]models.PlayerAggregate, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out
}

// FindPlayer binary-searches a table built by BuildPlayerStats.
func FindPlayer(table []models.PlayerAggregate, name string) (*models.PlayerAggregate, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Player >= name })
	if i < len(table) && table[i].Player == name {
		return &table[i], true
	}
	return nil, false
}

// PlayerSeasonStats returns per-season batting output for every batter,
// ordered by player then season. seasonOf maps a match id to its season;
// deliveries of unknown matches are dropped.
func PlayerSeasonStats(deliveries []models.Delivery, seasonOf func(matchID string) string) []models.PlayerSeasonStats {
	type key struct{ player, season string }
	type acc struct {
		runs, boundaries int
		matches          map[string]struct{}
	}
	by := make(map[key]*acc)

	for i := range deliveries {
		d := &deliveries[i]
		season := seasonOf(d.MatchID)
		if season == "" || d.Batter == "" {
			continue
		}
		k := key{d.Batter, season}
		a := by[k]
		if a == nil {
			a = &acc{matches: make(map[string]struct{})}
			by[k] = a
		}
		a.runs += d.BatsmanRuns
		a.matches[d.MatchID] = struct{}{}
		if d.IsBoundary() {
			a.boundaries++
		}
	}

	out := make([]models.PlayerSeasonStats, 0, len(by))
	for k, a := range by {
		out = append(out, models.PlayerSeasonStats{
			Player:     k.player,
			Season:     k.season,
			Runs:       a.runs,
			Matches:    len(a.matches),
			Boundaries: a.boundaries,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Player != out[j].Player {
			return out[i].Player < out[j].Player
		}
		return out[i].Season < out[j].Season
	})
	return out
}
