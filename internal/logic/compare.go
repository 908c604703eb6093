package logic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/crickstats/stats-api/internal/models"
)

// CompareSeason computes the season-comparison metrics for one season.
func CompareSeason(matches []models.Match, season string) models.SeasonComparison {
	c := models.SeasonComparison{Season: season}
	var batDecisions int
	var seasonMatches []models.Match
	for i := range matches {
		m := &matches[i]
		if m.Season != season {
			continue
		}
		seasonMatches = append(seasonMatches, *m)
		if m.SuperOver {
			c.SuperOvers++
		}
		if m.TossDecision == models.TossBat {
			batDecisions++
		}
	}
	c.Matches = len(seasonMatches)
	c.AvgRunsPerMatch, _ = sideMeans(seasonMatches)
	c.TossBatPercentage = percent(batDecisions, c.Matches)
	return c
}

// CompareTeam computes the team-comparison metrics for one team. AvgScore is
// the mean first-slot score.
func CompareTeam(matches []models.Match, team string) models.TeamComparison {
	c := models.TeamComparison{Team: team}
	var wins, tossWins int
	var slotOneRuns []float64
	for i := range matches {
		m := &matches[i]
		if !m.Involves(team) {
			continue
		}
		c.Matches++
		if m.Winner == team {
			wins++
		}
		if m.TossWinner == team {
			tossWins++
		}
		if m.Team1 == team {
			slotOneRuns = append(slotOneRuns, float64(m.Team1Runs))
		}
	}
	c.WinPercentage = percent(wins, c.Matches)
	c.TossWinPercent = percent(tossWins, c.Matches)
	if len(slotOneRuns) > 0 {
		c.AvgScore = stat.Mean(slotOneRuns, nil)
	}
	return c
}

// CompareBatter summarises a batter's career for head-to-head comparison.
func CompareBatter(deliveries []models.Delivery, player string) models.BatterComparison {
	c := models.BatterComparison{Player: player}
	matches := make(map[string]struct{})
	for i := range deliveries {
		d := &deliveries[i]
		if d.Batter != player {
			continue
		}
		c.Runs += d.BatsmanRuns
		matches[d.MatchID] = struct{}{}
		if d.IsLegal() {
			c.BallsFaced++
		}
		if d.IsBoundary() {
			c.Boundaries++
		}
	}
	c.Matches = len(matches)
	c.StrikeRate = percent(c.Runs, c.BallsFaced)
	c.RunsPerMatch = ratio(c.Runs, c.Matches)
	return c
}

// MatchFilter narrows ListMatches. Empty fields match everything.
type MatchFilter struct {
	Season   string
	Team     string
	Opponent string
}

// ListMatches returns cards for matching fixtures in date order.
func ListMatches(matches []models.Match, f MatchFilter) []models.MatchCard {
	var picked []*models.Match
	for i := range matches {
		m := &matches[i]
		if f.Season != "" && m.Season != f.Season {
			continue
		}
		if f.Team != "" && !m.Involves(f.Team) {
			continue
		}
		if f.Opponent != "" && !m.Involves(f.Opponent) {
			continue
		}
		picked = append(picked, m)
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Date.Before(picked[j].Date) })

	out := make([]models.MatchCard, len(picked))
	for i, m := range picked {
		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format("2006-01-02")
		}
		out[i] = models.MatchCard{
			ID:         m.ID,
			Season:     m.Season,
			Date:       date,
			Venue:      m.Venue,
			Team1:      m.Team1,
			Team2:      m.Team2,
			Team1Score: fmt.Sprintf("%d/%d", m.Team1Runs, m.Team1Wickets),
			Team2Score: fmt.Sprintf("%d/%d", m.Team2Runs, m.Team2Wickets),
			Winner:     m.Winner,
			MatchType:  m.MatchType,
			SuperOver:  m.SuperOver,
		}
	}
	return out
}

const (
	dreamBatters     = 5
	dreamAllRounders = 2
	dreamBowlers     = 3
	allRounderPool   = 7
)

// DreamXI picks the five leading run scorers, up to two all-rounders from the
// top seven scorers who have also taken wickets, and the three leading
// wicket takers. Nobody is picked twice.
func DreamXI(players []models.PlayerAggregate) models.DreamXI {
	byRuns := make([]models.PlayerAggregate, 0, len(players))
	for _, p := range players {
		if p.BallsFaced > 0 {
			byRuns = append(byRuns, p)
		}
	}
	sort.SliceStable(byRuns, func(i, j int) bool { return byRuns[i].TotalRuns > byRuns[j].TotalRuns })

	var byWickets []models.PlayerAggregate
	for _, p := range players {
		if p.IsBowler() {
			byWickets = append(byWickets, p)
		}
	}
	sort.SliceStable(byWickets, func(i, j int) bool { return byWickets[i].Wickets > byWickets[j].Wickets })

	var xi models.DreamXI
	picked := make(map[string]bool)
	add := func(p models.PlayerAggregate, role string) {
		picked[p.Player] = true
		xi.Players = append(xi.Players, models.DreamXIPick{
			Player:  p.Player,
			Role:    role,
			Runs:    p.TotalRuns,
			Wickets: p.Wickets,
		})
	}

	for _, p := range truncate(byRuns, dreamBatters) {
		add(p, models.RoleBatter)
	}

	rounders := 0
	for _, p := range truncate(byRuns, allRounderPool) {
		if rounders == dreamAllRounders {
			break
		}
		if p.IsBowler() && !picked[p.Player] {
			add(p, models.RoleAllRounder)
			rounders++
		}
	}

	bowlers := 0
	for _, p := range byWickets {
		if bowlers == dreamBowlers {
			break
		}
		if !picked[p.Player] {
			add(p, models.RoleBowler)
			bowlers++
		}
	}
	return xi
}
