package logic

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/crickstats/stats-api/internal/models"
)

// TeamPerformance aggregates every match where team appears on either side.
// The second return is false when the team has no matches.
func TeamPerformance(matches []models.Match, team string) (*models.TeamPerformance, bool) {
	p := &models.TeamPerformance{Team: team}
	var homeWins, awayWins, tossWinMatchWins int

	for i := range matches {
		m := &matches[i]
		if !m.Involves(team) {
			continue
		}
		p.TotalMatches++
		won := m.Winner == team
		if won {
			p.Wins++
		}

		// Slot orientation only; the data has no neutral/home venue flag.
		if m.Team1 == team {
			p.HomeMatches++
			if won {
				homeWins++
			}
		} else {
			p.AwayMatches++
			if won {
				awayWins++
			}
		}

		if m.TossWinner == team {
			p.TossWins++
			if won {
				tossWinMatchWins++
			}
		}
	}

	if p.TotalMatches == 0 {
		return nil, false
	}

	// No-results count as losses.
	p.Losses = p.TotalMatches - p.Wins
	p.WinPercentage = percent(p.Wins, p.TotalMatches)
	p.HomeWinPercentage = percent(homeWins, p.HomeMatches)
	p.AwayWinPercentage = percent(awayWins, p.AwayMatches)
	p.TossImpact = percent(tossWinMatchWins, p.TossWins)
	return p, true
}

// VenueStats aggregates matches played at venue. Pitch metrics need the
// delivery table and are filled by VenuePitch.
func VenueStats(matches []models.Match, venue string) (*models.VenueStats, bool) {
	v := &models.VenueStats{Venue: venue}
	var venueMatches []models.Match
	var batFirstWins, fieldFirstWins int

	winCounts := make(map[string]int)
	var winOrder []string
	seasons := make(map[string]int)

	for i := range matches {
		m := &matches[i]
		if m.Venue != venue {
			continue
		}
		venueMatches = append(venueMatches, *m)
		seasons[m.Season]++

		if m.TossDecision == models.TossBat {
			v.TossBatFirst++
		}
		if m.SuperOver {
			v.SuperOvers++
		}
		if m.HasWinner() {
			if _, seen := winCounts[m.Winner]; !seen {
				winOrder = append(winOrder, m.Winner)
			}
			winCounts[m.Winner]++

			if m.TossWinner == m.Winner {
				switch m.TossDecision {
				case models.TossBat:
					batFirstWins++
				case models.TossField:
					fieldFirstWins++
				}
			}
		}
	}

	if len(venueMatches) == 0 {
		return nil, false
	}

	v.TotalMatches = len(venueMatches)
	v.AvgRunsPerMatch, v.AvgWicketsPerMatch = sideMeans(venueMatches)

	v.MostSuccessfulTeam = models.NotAvailable
	for _, team := range winOrder {
		if winCounts[team] > v.MostSuccessfulWins {
			v.MostSuccessfulTeam = team
			v.MostSuccessfulWins = winCounts[team]
		}
	}

	v.BatFirstWinPercentage = percent(batFirstWins, v.TossBatFirst)
	v.FieldFirstWinPct = percent(fieldFirstWins, v.TotalMatches-v.TossBatFirst)

	for season, n := range seasons {
		v.MatchesBySeason = append(v.MatchesBySeason, models.SeasonCount{Season: season, Matches: n})
	}
	sort.Slice(v.MatchesBySeason, func(i, j int) bool {
		return v.MatchesBySeason[i].Season < v.MatchesBySeason[j].Season
	})
	return v, true
}

// VenuePitch summarises the deliveries of the given matches.
func VenuePitch(deliveries []models.Delivery, matchIDs map[string]struct{}) models.PitchProfile {
	var p models.PitchProfile
	var runs, wickets, boundaries int
	for i := range deliveries {
		d := &deliveries[i]
		if _, ok := matchIDs[d.MatchID]; !ok {
			continue
		}
		runs += d.TotalRuns
		if d.IsWicket {
			wickets++
		}
		if !d.IsLegal() {
			continue
		}
		p.Balls++
		if d.IsBoundary() {
			boundaries++
		}
	}
	p.RunsPerBall = ratio(runs, p.Balls)
	p.WicketsPerBall = ratio(wickets, p.Balls)
	p.BoundaryPercentage = percent(boundaries, p.Balls)
	return p
}

// PlayerVsTeam reports a batter's record against one bowling side.
// Found is false when the player never faced the team.
func PlayerVsTeam(deliveries []models.Delivery, player, team string) models.PlayerVsTeamStats {
	s := models.PlayerVsTeamStats{
		Player:         player,
		Team:           team,
		DismissalTypes: map[string]int{},
	}

	type inning struct {
		match string
		n     int
	}
	perMatch := make(map[string]int)
	innings := make(map[inning]struct{})

	for i := range deliveries {
		d := &deliveries[i]
		if d.Batter != player || d.BowlingTeam != team {
			continue
		}
		s.Found = true
		s.TotalRuns += d.BatsmanRuns
		perMatch[d.MatchID] += d.BatsmanRuns
		innings[inning{d.MatchID, d.Inning}] = struct{}{}

		if d.IsLegal() {
			s.BallsFaced++
		}
		switch {
		case d.IsSix():
			s.Sixes++
		case d.IsFour():
			s.Fours++
		}
		if d.DismissedBatter(player) {
			s.Dismissals++
			s.DismissalTypes[d.DismissalKind]++
		}
	}

	if !s.Found {
		return s
	}

	s.Boundaries = s.Sixes + s.Fours
	s.StrikeRate = percent(s.TotalRuns, s.BallsFaced)
	s.Average = average(s.TotalRuns, s.Dismissals)
	s.MatchesPlayed = len(perMatch)
	s.Innings = len(innings)
	for _, runs := range perMatch {
		if runs > s.BestScore {
			s.BestScore = runs
		}
	}
	return s
}

// SeasonSummary aggregates one season. deliveries may be the full table;
// only balls from the season's matches are counted.
func SeasonSummary(matches []models.Match, deliveries []models.Delivery, season string) (*models.SeasonSummary, bool) {
	var seasonMatches []models.Match
	ids := make(map[string]struct{})
	for i := range matches {
		if matches[i].Season == season {
			seasonMatches = append(seasonMatches, matches[i])
			ids[matches[i].ID] = struct{}{}
		}
	}
	if len(seasonMatches) == 0 {
		return nil, false
	}

	s := &models.SeasonSummary{
		Season:       season,
		TotalMatches: len(seasonMatches),
		Champion:     models.NotAvailable,
		RunnerUp:     models.NotAvailable,
		FinalVenue:   models.NotAvailable,
	}
	s.AvgRunsPerMatch, s.AvgWicketsPerMatch = sideMeans(seasonMatches)

	var tossWinners int
	finalSeen := false
	for i := range seasonMatches {
		m := &seasonMatches[i]
		if m.SuperOver {
			s.SuperOvers++
		}
		if m.TossWinner == m.Winner {
			tossWinners++
		}
		s.HighestScore = max(s.HighestScore, m.Team1Runs, m.Team2Runs)

		if m.IsFinal() && !finalSeen {
			finalSeen = true
			s.FinalVenue = m.Venue
			if m.HasWinner() {
				s.Champion = m.Winner
				s.RunnerUp = m.Opponent(m.Winner)
			}
		}
	}
	s.TossWinImpact = percent(tossWinners, s.TotalMatches)

	runs := make(map[string]int)
	batMatches := make(map[string]map[string]struct{})
	wickets := make(map[string]int)
	for i := range deliveries {
		d := &deliveries[i]
		if _, ok := ids[d.MatchID]; !ok {
			continue
		}
		switch {
		case d.IsSix():
			s.TotalSixes++
		case d.IsFour():
			s.TotalFours++
		}
		runs[d.Batter] += d.BatsmanRuns
		if batMatches[d.Batter] == nil {
			batMatches[d.Batter] = make(map[string]struct{})
		}
		batMatches[d.Batter][d.MatchID] = struct{}{}
		if d.IsBowlerWicket() {
			wickets[d.Bowler]++
		}
	}
	s.TotalBoundaries = s.TotalSixes + s.TotalFours
	s.BoundariesPerMatch = ratio(s.TotalBoundaries, s.TotalMatches)

	for p, r := range runs {
		s.TopBatters = append(s.TopBatters, models.BatterTally{Player: p, Runs: r, Matches: len(batMatches[p])})
	}
	sort.Slice(s.TopBatters, func(i, j int) bool {
		a, b := s.TopBatters[i], s.TopBatters[j]
		if a.Runs != b.Runs {
			return a.Runs > b.Runs
		}
		return a.Player < b.Player
	})
	s.TopBatters = truncate(s.TopBatters, seasonTopN)

	for p, w := range wickets {
		s.TopBowlers = append(s.TopBowlers, models.BowlerTally{Player: p, Wickets: w})
	}
	sort.Slice(s.TopBowlers, func(i, j int) bool {
		a, b := s.TopBowlers[i], s.TopBowlers[j]
		if a.Wickets != b.Wickets {
			return a.Wickets > b.Wickets
		}
		return a.Player < b.Player
	})
	s.TopBowlers = truncate(s.TopBowlers, seasonTopN)
	return s, true
}

// SeasonMetrics returns one row per season, ordered by season label.
func SeasonMetrics(matches []models.Match) []models.SeasonMetrics {
	type acc struct {
		runs, wickets []float64
		superOvers    int
	}
	bySeason := make(map[string]*acc)
	for i := range matches {
		m := &matches[i]
		a := bySeason[m.Season]
		if a == nil {
			a = &acc{}
			bySeason[m.Season] = a
		}
		a.runs = append(a.runs, float64(m.TotalRuns()))
		a.wickets = append(a.wickets, float64(m.TotalWickets()))
		if m.SuperOver {
			a.superOvers++
		}
	}

	out := make([]models.SeasonMetrics, 0, len(bySeason))
	for season, a := range bySeason {
		out = append(out, models.SeasonMetrics{
			Season:             season,
			Matches:            len(a.runs),
			AvgRunsPerMatch:    stat.Mean(a.runs, nil),
			AvgWicketsPerMatch: stat.Mean(a.wickets, nil),
			SuperOvers:         a.superOvers,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

const seasonTopN = 5

// sideMeans returns the mean of the two per-side column means for runs and
// wickets, which is the per-innings figure shown as "per match".
func sideMeans(matches []models.Match) (runs, wickets float64) {
	if len(matches) == 0 {
		return 0, 0
	}
	t1r := make([]float64, len(matches))
	t2r := make([]float64, len(matches))
	t1w := make([]float64, len(matches))
	t2w := make([]float64, len(matches))
	for i := range matches {
		t1r[i] = float64(matches[i].Team1Runs)
		t2r[i] = float64(matches[i].Team2Runs)
		t1w[i] = float64(matches[i].Team1Wickets)
		t2w[i] = float64(matches[i].Team2Wickets)
	}
	runs = (stat.Mean(t1r, nil) + stat.Mean(t2r, nil)) / 2
	wickets = (stat.Mean(t1w, nil) + stat.Mean(t2w, nil)) / 2
	return runs, wickets
}

func percent(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// average divides by dismissals, falling back to the raw numerator.
func average(runs, dismissals int) float64 {
	if dismissals <= 0 {
		return float64(runs)
	}
	return float64(runs) / float64(dismissals)
}

func truncate[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
