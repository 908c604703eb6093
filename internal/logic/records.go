package logic

import (
	"sort"

	"github.com/crickstats/stats-api/internal/models"
)

// Eras are the fixed season ranges used for era comparison.
var Eras = []models.Era{
	{Key: "era1", Label: "2008-2012", Seasons: []string{"2008", "2009", "2010", "2011", "2012"}},
	{Key: "era2", Label: "2013-2017", Seasons: []string{"2013", "2014", "2015", "2016", "2017"}},
	{Key: "era3", Label: "2018-2024", Seasons: []string{"2018", "2019", "2020", "2021", "2022", "2023", "2024"}},
}

// TopRunScorers ranks batters by total runs, ties by name.
func TopRunScorers(players []models.PlayerAggregate, limit int) []models.RunScorer {
	ranked := make([]models.PlayerAggregate, 0, len(players))
	for _, p := range players {
		if p.BallsFaced > 0 {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalRuns > ranked[j].TotalRuns })
	ranked = truncate(ranked, limit)

	out := make([]models.RunScorer, len(ranked))
	for i, p := range ranked {
		out[i] = models.RunScorer{
			Rank:       i + 1,
			Player:     p.Player,
			Runs:       p.TotalRuns,
			Matches:    p.Matches,
			Average:    p.BattingAverage,
			StrikeRate: p.StrikeRate,
		}
	}
	return out
}

// TopWicketTakers ranks bowlers by countable wickets, ties by name.
func TopWicketTakers(players []models.PlayerAggregate, limit int) []models.WicketTaker {
	var ranked []models.PlayerAggregate
	for _, p := range players {
		if p.IsBowler() {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Wickets > ranked[j].Wickets })
	ranked = truncate(ranked, limit)

	out := make([]models.WicketTaker, len(ranked))
	for i, p := range ranked {
		out[i] = models.WicketTaker{
			Rank:    i + 1,
			Player:  p.Player,
			Wickets: p.Wickets,
			Average: p.BowlingAverage,
			Economy: p.Economy,
		}
	}
	return out
}

// MostSuccessfulTeams ranks teams by match wins. No-results are ignored.
func MostSuccessfulTeams(matches []models.Match, limit int) []models.TeamWins {
	wins := make(map[string]int)
	for i := range matches {
		if matches[i].HasWinner() {
			wins[matches[i].Winner]++
		}
	}

	out := make([]models.TeamWins, 0, len(wins))
	for team, n := range wins {
		out = append(out, models.TeamWins{Team: team, Wins: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Team < out[j].Team
	})
	out = truncate(out, limit)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Champions lists the first decided final of each season, ordered by season.
func Champions(matches []models.Match) []models.Champion {
	seen := make(map[string]bool)
	var out []models.Champion
	for i := range matches {
		m := &matches[i]
		if !m.IsFinal() || !m.HasWinner() || seen[m.Season] {
			continue
		}
		seen[m.Season] = true
		out = append(out, models.Champion{
			Season:   m.Season,
			Winner:   m.Winner,
			RunnerUp: m.Opponent(m.Winner),
			Venue:    m.Venue,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// EraComparison aggregates each of the fixed Eras. seasonOf maps a match id
// to its season.
func EraComparison(matches []models.Match, deliveries []models.Delivery, seasonOf func(string) string) []models.EraStats {
	eraOf := make(map[string]int)
	for i, era := range Eras {
		for _, s := range era.Seasons {
			eraOf[s] = i
		}
	}

	perEra := make([][]models.Match, len(Eras))
	for i := range matches {
		if e, ok := eraOf[matches[i].Season]; ok {
			perEra[e] = append(perEra[e], matches[i])
		}
	}

	sixes := make([]int, len(Eras))
	boundaries := make([]int, len(Eras))
	for i := range deliveries {
		d := &deliveries[i]
		if !d.IsBoundary() {
			continue
		}
		e, ok := eraOf[seasonOf(d.MatchID)]
		if !ok {
			continue
		}
		boundaries[e]++
		if d.IsSix() {
			sixes[e]++
		}
	}

	out := make([]models.EraStats, len(Eras))
	for i, era := range Eras {
		avgRuns, _ := sideMeans(perEra[i])
		out[i] = models.EraStats{
			Era:                era,
			Matches:            len(perEra[i]),
			AvgRunsPerMatch:    avgRuns,
			TotalSixes:         sixes[i],
			BoundariesPerMatch: ratio(boundaries[i], len(perEra[i])),
		}
	}
	return out
}
