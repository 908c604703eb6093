package models

// RunScorer is a row of the all-time batting records table.
type RunScorer struct {
	Rank       int     `json:"rank"`
	Player     string  `json:"player"`
	Runs       int     `json:"runs"`
	Matches    int     `json:"matches"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strike_rate"`
}

// WicketTaker is a row of the all-time bowling records table.
type WicketTaker struct {
	Rank    int     `json:"rank"`
	Player  string  `json:"player"`
	Wickets int     `json:"wickets"`
	Average float64 `json:"average"`
	Economy float64 `json:"economy"`
}

// TeamWins is a row of the most-successful-teams table.
type TeamWins struct {
	Rank int    `json:"rank"`
	Team string `json:"team"`
	Wins int    `json:"wins"`
}

// Champion is one season on the champions timeline.
type Champion struct {
	Season   string `json:"season"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
	Venue    string `json:"venue"`
}

// Era is a named, fixed range of seasons.
type Era struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Seasons []string `json:"seasons"`
}

type EraStats struct {
	Era                Era     `json:"era"`
	Matches            int     `json:"matches"`
	AvgRunsPerMatch    float64 `json:"avg_runs_per_match"`
	TotalSixes         int     `json:"total_sixes"`
	BoundariesPerMatch float64 `json:"boundaries_per_match"`
}

// SeasonComparison holds the metrics shown when two seasons are compared.
type SeasonComparison struct {
	Season            string  `json:"season"`
	Matches           int     `json:"matches"`
	AvgRunsPerMatch   float64 `json:"avg_runs_per_match"`
	SuperOvers        int     `json:"super_overs"`
	TossBatPercentage float64 `json:"toss_bat_percentage"`
}

// TeamComparison holds the metrics shown when two teams are compared.
type TeamComparison struct {
	Team           string  `json:"team"`
	Matches        int     `json:"matches"`
	WinPercentage  float64 `json:"win_percentage"`
	AvgScore       float64 `json:"avg_score"`
	TossWinPercent float64 `json:"toss_win_percentage"`
}

// BatterComparison is one side of a player-vs-player comparison.
type BatterComparison struct {
	Player       string  `json:"player"`
	Runs         int     `json:"runs"`
	Matches      int     `json:"matches"`
	BallsFaced   int     `json:"balls_faced"`
	StrikeRate   float64 `json:"strike_rate"`
	RunsPerMatch float64 `json:"runs_per_match"`
	Boundaries   int     `json:"boundaries"`
}

// Dream XI roles.
const (
	RoleBatter     = "batter"
	RoleAllRounder = "all_rounder"
	RoleBowler     = "bowler"
)

type DreamXIPick struct {
	Player  string `json:"player"`
	Role    string `json:"role"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
}

type DreamXI struct {
	Players []DreamXIPick `json:"players"`
}

// MatchCard is a compact match listing entry.
type MatchCard struct {
	ID         string `json:"id"`
	Season     string `json:"season"`
	Date       string `json:"date"`
	Venue      string `json:"venue"`
	Team1      string `json:"team1"`
	Team2      string `json:"team2"`
	Team1Score string `json:"team1_score"`
	Team2Score string `json:"team2_score"`
	Winner     string `json:"winner"`
	MatchType  string `json:"match_type"`
	SuperOver  bool   `json:"super_over"`
}
