package worker

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/crickstats/stats-api/internal/models"
)

// MockWarmer implements Warmer and records every call
type MockWarmer struct {
	mu    sync.Mutex
	calls []string
	// FailTeam makes TeamPerformance fail for that team
	FailTeam string
}

func (m *MockWarmer) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockWarmer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]string(nil), m.calls...)
	sort.Strings(out)
	return out
}

func (m *MockWarmer) Teams() []string   { return []string{"A", "B"} }
func (m *MockWarmer) Venues() []string  { return []string{"X"} }
func (m *MockWarmer) Seasons() []string { return []string{"2010"} }

func (m *MockWarmer) TeamPerformance(ctx context.Context, team string) (*models.TeamPerformance, error) {
	m.record("team:" + team)
	if team == m.FailTeam {
		return nil, errors.New("boom")
	}
	return &models.TeamPerformance{Team: team}, nil
}

func (m *MockWarmer) VenueStats(ctx context.Context, venue string) (*models.VenueStats, error) {
	m.record("venue:" + venue)
	return &models.VenueStats{}, nil
}

func (m *MockWarmer) SeasonSummary(ctx context.Context, season string) (*models.SeasonSummary, error) {
	m.record("season:" + season)
	return &models.SeasonSummary{}, nil
}

func (m *MockWarmer) SeasonMetrics(ctx context.Context) ([]models.SeasonMetrics, error) {
	m.record("seasons:metrics")
	return nil, nil
}

func (m *MockWarmer) TopRunScorers(ctx context.Context, limit int) ([]models.RunScorer, error) {
	m.record("records:batting")
	return nil, nil
}

func (m *MockWarmer) TopWicketTakers(ctx context.Context, limit int) ([]models.WicketTaker, error) {
	m.record("records:bowling")
	return nil, nil
}

func (m *MockWarmer) MostSuccessfulTeams(ctx context.Context, limit int) ([]models.TeamWins, error) {
	m.record("records:teams")
	return nil, nil
}

func (m *MockWarmer) Champions(ctx context.Context) ([]models.Champion, error) {
	m.record("records:champions")
	return nil, nil
}

func (m *MockWarmer) EraComparison(ctx context.Context) ([]models.EraStats, error) {
	m.record("records:eras")
	return nil, nil
}

func (m *MockWarmer) DreamXI(ctx context.Context) (*models.DreamXI, error) {
	m.record("dreamxi")
	return &models.DreamXI{}, nil
}
