package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/crickstats/stats-api/internal/models"
)

const (
	oversPerInnings = 20
	ballsPerOver    = 6
	squadSize       = 11
	noResultOdds    = 40
)

var seedTeams = []string{
	"Chennai Strikers", "Mumbai Mariners", "Delhi Dynamos", "Kolkata Knights",
	"Punjab Panthers", "Rajasthan Royals XI", "Bangalore Blasters", "Hyderabad Hawks",
}

var seedVenues = []string{
	"Harbour Oval", "Central Stadium", "Riverside Ground", "Hilltop Park", "Eden Fields", "Lakeside Arena",
}

var dismissalKinds = []string{"caught", "bowled", "lbw", "run out", "stumped", "caught"}

// runWeights is the distribution of off-the-bat runs per legal ball.
var runWeights = []struct {
	runs   int
	weight int
}{{0, 35}, {1, 35}, {2, 10}, {3, 1}, {4, 13}, {6, 6}}

type generator struct {
	rng        *rand.Rand
	matches    []models.Match
	deliveries []models.Delivery
	nextID     int
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed)), nextID: 1}
}

func squad(team string) []string {
	initials := ""
	for _, w := range strings.Fields(team) {
		initials += w[:1]
	}
	players := make([]string, squadSize)
	for i := range players {
		players[i] = fmt.Sprintf("%s Player %d", initials, i+1)
	}
	return players
}

// season plays a single round robin followed by a final between the top two.
func (g *generator) season(year int) {
	wins := make(map[string]int)
	day := 0
	for i := 0; i < len(seedTeams); i++ {
		for j := i + 1; j < len(seedTeams); j++ {
			m := g.match(year, day, seedTeams[i], seedTeams[j], "League")
			if m.HasWinner() {
				wins[m.Winner]++
			}
			day++
		}
	}

	first, second := "", ""
	for _, t := range seedTeams {
		switch {
		case first == "" || wins[t] > wins[first]:
			first, second = t, first
		case second == "" || wins[t] > wins[second]:
			second = t
		}
	}
	g.match(year, day+2, first, second, models.MatchTypeFinal)
}

func (g *generator) match(year, day int, a, b, matchType string) models.Match {
	id := fmt.Sprint(g.nextID)
	g.nextID++

	tossWinner := a
	if g.rng.Intn(2) == 1 {
		tossWinner = b
	}
	decision := models.TossBat
	if g.rng.Intn(2) == 1 {
		decision = models.TossField
	}
	// Team1 always bats first.
	team1, team2 := tossWinner, a
	if tossWinner == a {
		team2 = b
	}
	if decision == models.TossField {
		team1, team2 = team2, team1
	}

	m := models.Match{
		ID:           id,
		Season:       fmt.Sprint(year),
		MatchNo:      fmt.Sprint(day + 1),
		Date:         time.Date(year, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		MatchType:    matchType,
		Venue:        seedVenues[g.rng.Intn(len(seedVenues))],
		Team1:        team1,
		Team2:        team2,
		TossWinner:   tossWinner,
		TossDecision: decision,
	}

	var top1, top2 string
	m.Team1Runs, m.Team1Wickets, top1 = g.innings(id, 1, team1, team2, -1)

	if matchType != models.MatchTypeFinal && g.rng.Intn(noResultOdds) == 0 {
		g.matches = append(g.matches, m)
		return m
	}

	m.Team2Runs, m.Team2Wickets, top2 = g.innings(id, 2, team2, team1, m.Team1Runs+1)
	switch {
	case m.Team1Runs > m.Team2Runs:
		m.Winner, m.Result, m.PlayerOfMatch = team1, "runs", top1
	case m.Team2Runs > m.Team1Runs:
		m.Winner, m.Result, m.PlayerOfMatch = team2, "wickets", top2
	default:
		m.SuperOver = true
		m.Result = "tie"
		m.Winner, m.PlayerOfMatch = team1, top1
		if g.rng.Intn(2) == 1 {
			m.Winner, m.PlayerOfMatch = team2, top2
		}
	}
	g.matches = append(g.matches, m)
	return m
}

// innings simulates up to 20 overs and returns runs, wickets and the top
// scorer. target < 0 means no chase.
func (g *generator) innings(matchID string, inning int, batting, bowling string, target int) (int, int, string) {
	bats := squad(batting)
	bowlers := squad(bowling)[6:]
	scores := make(map[string]int)

	striker, nonStriker, next := 0, 1, 2
	runs, wickets := 0, 0

	for over := 0; over < oversPerInnings; over++ {
		bowler := bowlers[over%len(bowlers)]
		for ball := 1; ball <= ballsPerOver; {
			d := models.Delivery{
				MatchID:     matchID,
				Inning:      inning,
				Over:        over,
				Ball:        ball,
				Batter:      bats[striker],
				Bowler:      bowler,
				NonStriker:  bats[nonStriker],
				BattingTeam: batting,
				BowlingTeam: bowling,
			}

			switch r := g.rng.Intn(100); {
			case r < 4:
				d.ExtrasType, d.ExtraRuns = models.ExtrasWides, 1
			case r < 9:
				d.IsWicket = true
				d.DismissalKind = dismissalKinds[g.rng.Intn(len(dismissalKinds))]
				d.PlayerDismissed = bats[striker]
				if d.DismissalKind == "caught" || d.DismissalKind == "run out" || d.DismissalKind == "stumped" {
					d.Fielder = bowlers[g.rng.Intn(len(bowlers))]
				}
			default:
				d.BatsmanRuns = g.runs()
			}
			d.TotalRuns = d.BatsmanRuns + d.ExtraRuns
			g.deliveries = append(g.deliveries, d)

			runs += d.TotalRuns
			scores[d.Batter] += d.BatsmanRuns
			if d.IsLegal() {
				ball++
			}
			if d.IsWicket {
				wickets++
				if wickets == squadSize-1 {
					return runs, wickets, topScorer(bats, scores)
				}
				striker = next
				next++
			} else if d.BatsmanRuns%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
			if target > 0 && runs >= target {
				return runs, wickets, topScorer(bats, scores)
			}
		}
		striker, nonStriker = nonStriker, striker
	}
	return runs, wickets, topScorer(bats, scores)
}

func (g *generator) runs() int {
	total := 0
	for _, w := range runWeights {
		total += w.weight
	}
	n := g.rng.Intn(total)
	for _, w := range runWeights {
		if n < w.weight {
			return w.runs
		}
		n -= w.weight
	}
	return 0
}

func topScorer(order []string, scores map[string]int) string {
	best := order[0]
	for _, p := range order {
		if scores[p] > scores[best] {
			best = p
		}
	}
	return best
}
