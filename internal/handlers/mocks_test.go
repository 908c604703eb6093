package handlers

import (
	"context"

	"github.com/crickstats/stats-api/internal/logic"
	"github.com/crickstats/stats-api/internal/models"
)

// MockStatsService implements logic.StatsService. Unset funcs return zero values.
type MockStatsService struct {
	TeamsList   []string
	VenuesList  []string
	SeasonsList []string

	TeamPerformanceFunc     func(ctx context.Context, team string) (*models.TeamPerformance, error)
	VenueStatsFunc          func(ctx context.Context, venue string) (*models.VenueStats, error)
	SeasonSummaryFunc       func(ctx context.Context, season string) (*models.SeasonSummary, error)
	PlayerFunc              func(ctx context.Context, player string) (*models.PlayerAggregate, error)
	PlayerSeasonsFunc       func(ctx context.Context, player string) ([]models.PlayerSeasonStats, error)
	PlayerVsTeamFunc        func(ctx context.Context, player, team string) (*models.PlayerVsTeamStats, error)
	TopRunScorersFunc       func(ctx context.Context, limit int) ([]models.RunScorer, error)
	CompareSeasonsFunc      func(ctx context.Context, a, b string) ([]models.SeasonComparison, error)
	CompareTeamsFunc        func(ctx context.Context, a, b string) ([]models.TeamComparison, error)
	ComparePlayersFunc      func(ctx context.Context, a, b string) ([]models.BatterComparison, error)
	MatchesFunc             func(ctx context.Context, f logic.MatchFilter) ([]models.MatchCard, error)
	MostSuccessfulTeamsFunc func(ctx context.Context, limit int) ([]models.TeamWins, error)
}

var _ logic.StatsService = (*MockStatsService)(nil)

func (m *MockStatsService) Teams() []string                   { return m.TeamsList }
func (m *MockStatsService) Venues() []string                  { return m.VenuesList }
func (m *MockStatsService) Seasons() []string                 { return m.SeasonsList }
func (m *MockStatsService) Players() []models.PlayerAggregate { return nil }

func (m *MockStatsService) TeamPerformance(ctx context.Context, team string) (*models.TeamPerformance, error) {
	if m.TeamPerformanceFunc != nil {
		return m.TeamPerformanceFunc(ctx, team)
	}
	return &models.TeamPerformance{Team: team}, nil
}

func (m *MockStatsService) VenueStats(ctx context.Context, venue string) (*models.VenueStats, error) {
	if m.VenueStatsFunc != nil {
		return m.VenueStatsFunc(ctx, venue)
	}
	return &models.VenueStats{Venue: venue}, nil
}

func (m *MockStatsService) SeasonSummary(ctx context.Context, season string) (*models.SeasonSummary, error) {
	if m.SeasonSummaryFunc != nil {
		return m.SeasonSummaryFunc(ctx, season)
	}
	return &models.SeasonSummary{Season: season}, nil
}

func (m *MockStatsService) SeasonMetrics(ctx context.Context) ([]models.SeasonMetrics, error) {
	return []models.SeasonMetrics{}, nil
}

func (m *MockStatsService) Player(ctx context.Context, player string) (*models.PlayerAggregate, error) {
	if m.PlayerFunc != nil {
		return m.PlayerFunc(ctx, player)
	}
	return &models.PlayerAggregate{Player: player}, nil
}

func (m *MockStatsService) PlayerSeasons(ctx context.Context, player string) ([]models.PlayerSeasonStats, error) {
	if m.PlayerSeasonsFunc != nil {
		return m.PlayerSeasonsFunc(ctx, player)
	}
	return []models.PlayerSeasonStats{}, nil
}

func (m *MockStatsService) PlayerVsTeam(ctx context.Context, player, team string) (*models.PlayerVsTeamStats, error) {
	if m.PlayerVsTeamFunc != nil {
		return m.PlayerVsTeamFunc(ctx, player, team)
	}
	return &models.PlayerVsTeamStats{Player: player, Team: team}, nil
}

func (m *MockStatsService) TopRunScorers(ctx context.Context, limit int) ([]models.RunScorer, error) {
	if m.TopRunScorersFunc != nil {
		return m.TopRunScorersFunc(ctx, limit)
	}
	return []models.RunScorer{}, nil
}

func (m *MockStatsService) TopWicketTakers(ctx context.Context, limit int) ([]models.WicketTaker, error) {
	return []models.WicketTaker{}, nil
}

func (m *MockStatsService) MostSuccessfulTeams(ctx context.Context, limit int) ([]models.TeamWins, error) {
	if m.MostSuccessfulTeamsFunc != nil {
		return m.MostSuccessfulTeamsFunc(ctx, limit)
	}
	return []models.TeamWins{}, nil
}

func (m *MockStatsService) Champions(ctx context.Context) ([]models.Champion, error) {
	return []models.Champion{}, nil
}

func (m *MockStatsService) EraComparison(ctx context.Context) ([]models.EraStats, error) {
	return []models.EraStats{}, nil
}

func (m *MockStatsService) CompareSeasons(ctx context.Context, a, b string) ([]models.SeasonComparison, error) {
	if m.CompareSeasonsFunc != nil {
		return m.CompareSeasonsFunc(ctx, a, b)
	}
	return []models.SeasonComparison{{Season: a}, {Season: b}}, nil
}

func (m *MockStatsService) CompareTeams(ctx context.Context, a, b string) ([]models.TeamComparison, error) {
	if m.CompareTeamsFunc != nil {
		return m.CompareTeamsFunc(ctx, a, b)
	}
	return []models.TeamComparison{{Team: a}, {Team: b}}, nil
}

func (m *MockStatsService) ComparePlayers(ctx context.Context, a, b string) ([]models.BatterComparison, error) {
	if m.ComparePlayersFunc != nil {
		return m.ComparePlayersFunc(ctx, a, b)
	}
	return []models.BatterComparison{{Player: a}, {Player: b}}, nil
}

func (m *MockStatsService) Matches(ctx context.Context, f logic.MatchFilter) ([]models.MatchCard, error) {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockStatsService) DreamXI(ctx context.Context) (*models.DreamXI, error) {
	return &models.DreamXI{}, nil
}

// MockPredictor returns a fixed heuristic split
type MockPredictor struct {
	Trained bool
}

func (m *MockPredictor) Predict(team1, team2, venue string) models.WinProbability {
	return models.WinProbability{Team1: team1, Team2: team2, Venue: venue, Team1Prob: 60, Team2Prob: 40, Method: models.MethodHeuristic}
}

func (m *MockPredictor) Diagnostics() models.ModelDiagnostics {
	return models.ModelDiagnostics{Trained: m.Trained, RunID: "run-1"}
}

// MockSimilarity answers for one known player
type MockSimilarity struct {
	Known   string
	Results []models.SimilarPlayer
	LastK   int
}

func (m *MockSimilarity) FindSimilar(player string, k int) ([]models.SimilarPlayer, bool) {
	m.LastK = k
	if player != m.Known {
		return nil, false
	}
	return m.Results, true
}

func (m *MockSimilarity) Ready() bool { return m.Known != "" }

type MockQueue struct{ Depth int }

func (m *MockQueue) QueueDepth() int { return m.Depth }
