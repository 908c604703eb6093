package logic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/cache"
	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/models"
)

// ErrNotFound is returned for a team, venue, season or player absent from the dataset.
var ErrNotFound = errors.New("not found")

var computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "crickstats_aggregate_duration_seconds",
	Help:    "Time spent computing an aggregate on a cache miss",
	Buckets: prometheus.DefBuckets,
}, []string{"op"})

// StatsService answers aggregate queries over the loaded dataset. Results are
// cached per key; the dataset itself is never modified.
type StatsService interface {
	Teams() []string
	Venues() []string
	Seasons() []string
	Players() []models.PlayerAggregate

	TeamPerformance(ctx context.Context, team string) (*models.TeamPerformance, error)
	VenueStats(ctx context.Context, venue string) (*models.VenueStats, error)
	SeasonSummary(ctx context.Context, season string) (*models.SeasonSummary, error)
	SeasonMetrics(ctx context.Context) ([]models.SeasonMetrics, error)
	Player(ctx context.Context, player string) (*models.PlayerAggregate, error)
	PlayerSeasons(ctx context.Context, player string) ([]models.PlayerSeasonStats, error)
	PlayerVsTeam(ctx context.Context, player, team string) (*models.PlayerVsTeamStats, error)

	TopRunScorers(ctx context.Context, limit int) ([]models.RunScorer, error)
	TopWicketTakers(ctx context.Context, limit int) ([]models.WicketTaker, error)
	MostSuccessfulTeams(ctx context.Context, limit int) ([]models.TeamWins, error)
	Champions(ctx context.Context) ([]models.Champion, error)
	EraComparison(ctx context.Context) ([]models.EraStats, error)

	CompareSeasons(ctx context.Context, a, b string) ([]models.SeasonComparison, error)
	CompareTeams(ctx context.Context, a, b string) ([]models.TeamComparison, error)
	ComparePlayers(ctx context.Context, a, b string) ([]models.BatterComparison, error)
	Matches(ctx context.Context, f MatchFilter) ([]models.MatchCard, error)
	DreamXI(ctx context.Context) (*models.DreamXI, error)
}

type statsService struct {
	ds      *dataset.Dataset
	players []models.PlayerAggregate
	loader  *cache.Loader
	logger  *zap.SugaredLogger
}

// NewStatsService builds the player table once up front. store may be nil.
func NewStatsService(ds *dataset.Dataset, store cache.Store, logger *zap.Logger) StatsService {
	start := time.Now()
	players := BuildPlayerStats(ds.Deliveries)
	logger.Sugar().Infow("Player statistics built",
		"players", len(players),
		"deliveries", len(ds.Deliveries),
		"duration", time.Since(start),
	)
	return &statsService{
		ds:      ds,
		players: players,
		loader:  cache.NewLoader(store, logger),
		logger:  logger.Sugar(),
	}
}

func (s *statsService) Teams() []string                   { return s.ds.Teams() }
func (s *statsService) Venues() []string                  { return s.ds.Venues() }
func (s *statsService) Seasons() []string                 { return s.ds.Seasons() }
func (s *statsService) Players() []models.PlayerAggregate { return s.players }

// timed wraps a computation with the duration histogram.
func timed[T any](op string, fn func() (T, error)) func(context.Context) (T, error) {
	return func(context.Context) (T, error) {
		t := prometheus.NewTimer(computeDuration.WithLabelValues(op))
		defer t.ObserveDuration()
		return fn()
	}
}

func (s *statsService) TeamPerformance(ctx context.Context, team string) (*models.TeamPerformance, error) {
	return cache.Fetch(ctx, s.loader, "team:"+team, timed("team", func() (*models.TeamPerformance, error) {
		p, ok := TeamPerformance(s.ds.Matches, team)
		if !ok {
			return nil, fmt.Errorf("team %q: %w", team, ErrNotFound)
		}
		return p, nil
	}))
}

func (s *statsService) VenueStats(ctx context.Context, venue string) (*models.VenueStats, error) {
	return cache.Fetch(ctx, s.loader, "venue:"+venue, timed("venue", func() (*models.VenueStats, error) {
		v, ok := VenueStats(s.ds.Matches, venue)
		if !ok {
			return nil, fmt.Errorf("venue %q: %w", venue, ErrNotFound)
		}
		ids := make(map[string]struct{}, v.TotalMatches)
		for i := range s.ds.Matches {
			if s.ds.Matches[i].Venue == venue {
				ids[s.ds.Matches[i].ID] = struct{}{}
			}
		}
		v.Pitch = VenuePitch(s.ds.Deliveries, ids)
		return v, nil
	}))
}

func (s *statsService) SeasonSummary(ctx context.Context, season string) (*models.SeasonSummary, error) {
	return cache.Fetch(ctx, s.loader, "season:"+season, timed("season", func() (*models.SeasonSummary, error) {
		sum, ok := SeasonSummary(s.ds.Matches, s.ds.Deliveries, season)
		if !ok {
			return nil, fmt.Errorf("season %q: %w", season, ErrNotFound)
		}
		return sum, nil
	}))
}

func (s *statsService) SeasonMetrics(ctx context.Context) ([]models.SeasonMetrics, error) {
	return cache.Fetch(ctx, s.loader, "seasons:metrics", timed("season_metrics", func() ([]models.SeasonMetrics, error) {
		return SeasonMetrics(s.ds.Matches), nil
	}))
}

func (s *statsService) Player(_ context.Context, player string) (*models.PlayerAggregate, error) {
	p, ok := FindPlayer(s.players, player)
	if !ok {
		return nil, fmt.Errorf("player %q: %w", player, ErrNotFound)
	}
	out := *p
	return &out, nil
}

func (s *statsService) PlayerSeasons(ctx context.Context, player string) ([]models.PlayerSeasonStats, error) {
	all, err := cache.Fetch(ctx, s.loader, "players:seasons", timed("player_seasons", func() ([]models.PlayerSeasonStats, error) {
		return PlayerSeasonStats(s.ds.Deliveries, s.ds.SeasonOf), nil
	}))
	if err != nil {
		return nil, err
	}

	var out []models.PlayerSeasonStats
	for _, row := range all {
		if row.Player == player {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("player %q: %w", player, ErrNotFound)
	}
	return out, nil
}

// PlayerVsTeam never returns ErrNotFound; an empty matchup comes back with
// Found=false and is not cached.
func (s *statsService) PlayerVsTeam(ctx context.Context, player, team string) (*models.PlayerVsTeamStats, error) {
	compute := timed("player_vs_team", func() (*models.PlayerVsTeamStats, error) {
		st := PlayerVsTeam(s.ds.Deliveries, player, team)
		return &st, nil
	})
	found := func(st *models.PlayerVsTeamStats) bool { return st.Found }
	return cache.FetchIf(ctx, s.loader, pvtKey(player, team), compute, found)
}

// pvtKey escapes both names so no pair of names can share a key.
func pvtKey(player, team string) string {
	return "pvt:" + url.QueryEscape(player) + ":" + url.QueryEscape(team)
}

func (s *statsService) TopRunScorers(ctx context.Context, limit int) ([]models.RunScorer, error) {
	return cache.Fetch(ctx, s.loader, fmt.Sprintf("records:batting:%d", limit), timed("records", func() ([]models.RunScorer, error) {
		return TopRunScorers(s.players, limit), nil
	}))
}

func (s *statsService) TopWicketTakers(ctx context.Context, limit int) ([]models.WicketTaker, error) {
	return cache.Fetch(ctx, s.loader, fmt.Sprintf("records:bowling:%d", limit), timed("records", func() ([]models.WicketTaker, error) {
		return TopWicketTakers(s.players, limit), nil
	}))
}

func (s *statsService) MostSuccessfulTeams(ctx context.Context, limit int) ([]models.TeamWins, error) {
	return cache.Fetch(ctx, s.loader, fmt.Sprintf("records:teams:%d", limit), timed("records", func() ([]models.TeamWins, error) {
		return MostSuccessfulTeams(s.ds.Matches, limit), nil
	}))
}

func (s *statsService) Champions(ctx context.Context) ([]models.Champion, error) {
	return cache.Fetch(ctx, s.loader, "records:champions", timed("records", func() ([]models.Champion, error) {
		return Champions(s.ds.Matches), nil
	}))
}

func (s *statsService) EraComparison(ctx context.Context) ([]models.EraStats, error) {
	return cache.Fetch(ctx, s.loader, "records:eras", timed("eras", func() ([]models.EraStats, error) {
		return EraComparison(s.ds.Matches, s.ds.Deliveries, s.ds.SeasonOf), nil
	}))
}

func (s *statsService) CompareSeasons(_ context.Context, a, b string) ([]models.SeasonComparison, error) {
	for _, season := range []string{a, b} {
		if !s.ds.HasSeason(season) {
			return nil, fmt.Errorf("season %q: %w", season, ErrNotFound)
		}
	}
	return []models.SeasonComparison{CompareSeason(s.ds.Matches, a), CompareSeason(s.ds.Matches, b)}, nil
}

func (s *statsService) CompareTeams(_ context.Context, a, b string) ([]models.TeamComparison, error) {
	for _, team := range []string{a, b} {
		if !s.ds.HasTeam(team) {
			return nil, fmt.Errorf("team %q: %w", team, ErrNotFound)
		}
	}
	return []models.TeamComparison{CompareTeam(s.ds.Matches, a), CompareTeam(s.ds.Matches, b)}, nil
}

func (s *statsService) ComparePlayers(_ context.Context, a, b string) ([]models.BatterComparison, error) {
	for _, p := range []string{a, b} {
		if _, ok := FindPlayer(s.players, p); !ok {
			return nil, fmt.Errorf("player %q: %w", p, ErrNotFound)
		}
	}
	return []models.BatterComparison{CompareBatter(s.ds.Deliveries, a), CompareBatter(s.ds.Deliveries, b)}, nil
}

func (s *statsService) Matches(_ context.Context, f MatchFilter) ([]models.MatchCard, error) {
	return ListMatches(s.ds.Matches, f), nil
}

func (s *statsService) DreamXI(ctx context.Context) (*models.DreamXI, error) {
	return cache.Fetch(ctx, s.loader, "dreamxi", timed("dreamxi", func() (*models.DreamXI, error) {
		xi := DreamXI(s.players)
		return &xi, nil
	}))
}
