package models

// TeamPerformance aggregates every match a team played. Home and away refer
// to the Team1 and Team2 slots of the source data, not to real venues.
type TeamPerformance struct {
	Team              string  `json:"team"`
	TotalMatches      int     `json:"total_matches"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinPercentage     float64 `json:"win_percentage"`
	HomeMatches       int     `json:"home_matches"`
	AwayMatches       int     `json:"away_matches"`
	HomeWinPercentage float64 `json:"home_win_percentage"`
	AwayWinPercentage float64 `json:"away_win_percentage"`
	TossWins          int     `json:"toss_wins"`
	TossImpact        float64 `json:"toss_impact"`
}

// SeasonCount is a per-season tally.
type SeasonCount struct {
	Season  string `json:"season"`
	Matches int    `json:"matches"`
}

// PitchProfile summarises ball-by-ball behaviour at a venue.
type PitchProfile struct {
	Balls              int     `json:"balls"`
	RunsPerBall        float64 `json:"runs_per_ball"`
	WicketsPerBall     float64 `json:"wickets_per_ball"`
	BoundaryPercentage float64 `json:"boundary_percentage"`
}

type VenueStats struct {
	Venue                 string        `json:"venue"`
	TotalMatches          int           `json:"total_matches"`
	AvgRunsPerMatch       float64       `json:"avg_runs_per_match"`
	AvgWicketsPerMatch    float64       `json:"avg_wickets_per_match"`
	TossBatFirst          int           `json:"toss_bat_first"`
	SuperOvers            int           `json:"super_overs"`
	MostSuccessfulTeam    string        `json:"most_successful_team"`
	MostSuccessfulWins    int           `json:"most_successful_wins"`
	BatFirstWinPercentage float64       `json:"bat_first_win_pct"`
	FieldFirstWinPct      float64       `json:"field_first_win_pct"`
	MatchesBySeason       []SeasonCount `json:"matches_by_season"`
	Pitch                 PitchProfile  `json:"pitch"`
}

// PlayerVsTeamStats is a batter's record against one bowling side.
// Found is false when the player never faced the team.
type PlayerVsTeamStats struct {
	Player         string         `json:"player"`
	Team           string         `json:"team"`
	Found          bool           `json:"found"`
	TotalRuns      int            `json:"total_runs"`
	BallsFaced     int            `json:"balls_faced"`
	StrikeRate     float64        `json:"strike_rate"`
	Dismissals     int            `json:"dismissals"`
	Average        float64        `json:"average"`
	Boundaries     int            `json:"boundaries"`
	Sixes          int            `json:"sixes"`
	Fours          int            `json:"fours"`
	MatchesPlayed  int            `json:"matches_played"`
	Innings        int            `json:"innings"`
	BestScore      int            `json:"best_score"`
	DismissalTypes map[string]int `json:"dismissal_types"`
}

// BatterTally is a compact runs/matches entry used in rankings.
type BatterTally struct {
	Player  string `json:"player"`
	Runs    int    `json:"runs"`
	Matches int    `json:"matches"`
}

// BowlerTally is a compact wickets entry used in rankings.
type BowlerTally struct {
	Player  string `json:"player"`
	Wickets int    `json:"wickets"`
}

type SeasonSummary struct {
	Season             string        `json:"season"`
	TotalMatches       int           `json:"total_matches"`
	SuperOvers         int           `json:"super_overs"`
	AvgRunsPerMatch    float64       `json:"avg_runs_per_match"`
	AvgWicketsPerMatch float64       `json:"avg_wickets_per_match"`
	HighestScore       int           `json:"highest_score"`
	Champion           string        `json:"champion"`
	RunnerUp           string        `json:"runner_up"`
	FinalVenue         string        `json:"final_venue"`
	TotalBoundaries    int           `json:"total_boundaries"`
	TotalSixes         int           `json:"total_sixes"`
	TotalFours         int           `json:"total_fours"`
	BoundariesPerMatch float64       `json:"boundaries_per_match"`
	TossWinImpact      float64       `json:"toss_win_impact"`
	TopBatters         []BatterTally `json:"top_batters"`
	TopBowlers         []BowlerTally `json:"top_bowlers"`
}

// SeasonMetrics is one row of the per-season match overview.
type SeasonMetrics struct {
	Season             string  `json:"season"`
	Matches            int     `json:"matches"`
	AvgRunsPerMatch    float64 `json:"avg_runs_per_match"`
	AvgWicketsPerMatch float64 `json:"avg_wickets_per_match"`
	SuperOvers         int     `json:"super_overs"`
}

// PlayerSeasonStats is a batter's output in a single season.
type PlayerSeasonStats struct {
	Player     string `json:"player"`
	Season     string `json:"season"`
	Runs       int    `json:"runs"`
	Matches    int    `json:"matches"`
	Boundaries int    `json:"boundaries"`
}

// PlayerAggregate is the derived per-player row of batting and bowling
// figures. A side the player never featured on is all zero.
type PlayerAggregate struct {
	Player string `json:"player"`

	// Batting
	TotalRuns          int     `json:"total_runs"`
	AvgRunsPerBall     float64 `json:"avg_runs_per_ball"`
	BallsFaced         int     `json:"balls_faced"`
	Matches            int     `json:"matches"`
	TimesDismissed     int     `json:"times_dismissed"`
	Boundaries         int     `json:"boundaries"`
	Sixes              int     `json:"sixes"`
	Fours              int     `json:"fours"`
	BattingAverage     float64 `json:"batting_average"`
	StrikeRate         float64 `json:"strike_rate"`
	BoundaryPercentage float64 `json:"boundary_percentage"`

	// Bowling
	Wickets        int     `json:"wickets"`
	RunsConceded   int     `json:"runs_conceded"`
	BallsBowled    int     `json:"balls_bowled"`
	MatchesBowled  int     `json:"matches_bowled"`
	BowlingAverage float64 `json:"bowling_average"`
	Economy        float64 `json:"economy"`
}

// IsBowler reports whether the player has bowling credit.
func (p *PlayerAggregate) IsBowler() bool {
	return p.Wickets > 0
}
