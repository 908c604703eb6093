package models

import (
	"strings"
	"time"
)

// Sentinel values written by preprocessing in place of missing fields.
const (
	NoResult       = "No Result"
	NotAwarded     = "Not Awarded"
	UnknownToss    = "Unknown"
	NotAvailable   = "N/A"
	MatchTypeFinal = "Final"
)

// Toss decisions as they appear in the cleaned dataset.
const (
	TossBat   = "Bat"
	TossField = "Field"
)

// Extras types that do not count as a ball faced.
const (
	ExtrasWides   = "Wides"
	ExtrasNoballs = "Noballs"
)

// nonBowlerDismissals are dismissal kinds not credited to the bowler.
var nonBowlerDismissals = map[string]struct{}{
	"run out":               {},
	"obstructing the field": {},
	"retired hurt":          {},
}

// Match is one completed fixture. Immutable after preprocessing.
type Match struct {
	ID            string    `json:"id"`
	Season        string    `json:"season"`
	MatchNo       string    `json:"match_no,omitempty"`
	Date          time.Time `json:"date"`
	MatchType     string    `json:"match_type"`
	Venue         string    `json:"venue"`
	Team1         string    `json:"team1"`
	Team2         string    `json:"team2"`
	TossWinner    string    `json:"toss_winner"`
	TossDecision  string    `json:"toss_decision"`
	Team1Runs     int       `json:"team1_runs"`
	Team1Wickets  int       `json:"team1_wickets"`
	Team2Runs     int       `json:"team2_runs"`
	Team2Wickets  int       `json:"team2_wickets"`
	Winner        string    `json:"winner"`
	Result        string    `json:"result,omitempty"`
	PlayerOfMatch string    `json:"player_of_match,omitempty"`
	SuperOver     bool      `json:"super_over"`
}

// HasWinner reports whether the match was decided.
func (m *Match) HasWinner() bool {
	return m.Winner != "" && m.Winner != NoResult
}

// Involves reports whether team played in the match.
func (m *Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// IsFinal reports whether the match was a tournament final.
func (m *Match) IsFinal() bool {
	return strings.EqualFold(m.MatchType, MatchTypeFinal)
}

// Opponent returns the other side, or "" if team did not play.
func (m *Match) Opponent(team string) string {
	switch team {
	case m.Team1:
		return m.Team2
	case m.Team2:
		return m.Team1
	}
	return ""
}

func (m *Match) TotalRuns() int    { return m.Team1Runs + m.Team2Runs }
func (m *Match) TotalWickets() int { return m.Team1Wickets + m.Team2Wickets }

// Delivery is one ball bowled.
type Delivery struct {
	MatchID         string `json:"match_id"`
	Inning          int    `json:"inning"`
	Over            int    `json:"over"`
	Ball            int    `json:"ball"`
	Batter          string `json:"batter"`
	Bowler          string `json:"bowler"`
	NonStriker      string `json:"non_striker,omitempty"`
	BattingTeam     string `json:"batting_team"`
	BowlingTeam     string `json:"bowling_team"`
	BatsmanRuns     int    `json:"batsman_runs"`
	ExtraRuns       int    `json:"extra_runs"`
	TotalRuns       int    `json:"total_runs"`
	IsWicket        bool   `json:"is_wicket"`
	DismissalKind   string `json:"dismissal_kind,omitempty"`
	PlayerDismissed string `json:"player_dismissed,omitempty"`
	Fielder         string `json:"fielder,omitempty"`
	ExtrasType      string `json:"extras_type,omitempty"`
}

// IsLegal reports whether the ball counts as faced by the batter.
func (d *Delivery) IsLegal() bool {
	return !strings.EqualFold(d.ExtrasType, ExtrasWides) && !strings.EqualFold(d.ExtrasType, ExtrasNoballs)
}

func (d *Delivery) IsFour() bool     { return d.BatsmanRuns == 4 }
func (d *Delivery) IsSix() bool      { return d.BatsmanRuns == 6 }
func (d *Delivery) IsBoundary() bool { return d.IsFour() || d.IsSix() }

// IsBowlerWicket reports whether the delivery took a wicket credited to the bowler.
func (d *Delivery) IsBowlerWicket() bool {
	if !d.IsWicket {
		return false
	}
	_, excluded := nonBowlerDismissals[strings.ToLower(strings.TrimSpace(d.DismissalKind))]
	return !excluded
}

// DismissedBatter reports whether the delivery dismissed player.
func (d *Delivery) DismissedBatter(player string) bool {
	return d.IsWicket && d.PlayerDismissed == player
}
