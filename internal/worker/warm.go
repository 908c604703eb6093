package worker

import (
	"context"

	"github.com/crickstats/stats-api/internal/models"
)

// Warmer is the part of the stats service that the warm jobs exercise.
// Each call stores its result in the service's cache.
type Warmer interface {
	Teams() []string
	Venues() []string
	Seasons() []string

	TeamPerformance(ctx context.Context, team string) (*models.TeamPerformance, error)
	VenueStats(ctx context.Context, venue string) (*models.VenueStats, error)
	SeasonSummary(ctx context.Context, season string) (*models.SeasonSummary, error)
	SeasonMetrics(ctx context.Context) ([]models.SeasonMetrics, error)
	TopRunScorers(ctx context.Context, limit int) ([]models.RunScorer, error)
	TopWicketTakers(ctx context.Context, limit int) ([]models.WicketTaker, error)
	MostSuccessfulTeams(ctx context.Context, limit int) ([]models.TeamWins, error)
	Champions(ctx context.Context) ([]models.Champion, error)
	EraComparison(ctx context.Context) ([]models.EraStats, error)
	DreamXI(ctx context.Context) (*models.DreamXI, error)
}

// WarmJobs lists one job per team, venue and season followed by the
// league-wide records. limit is the record table size the API serves by
// default.
func WarmJobs(svc Warmer, limit int) []Job {
	var jobs []Job
	for _, team := range svc.Teams() {
		jobs = append(jobs, Job{Name: "team:" + team, Run: func(ctx context.Context) error {
			_, err := svc.TeamPerformance(ctx, team)
			return err
		}})
	}
	for _, venue := range svc.Venues() {
		jobs = append(jobs, Job{Name: "venue:" + venue, Run: func(ctx context.Context) error {
			_, err := svc.VenueStats(ctx, venue)
			return err
		}})
	}
	for _, season := range svc.Seasons() {
		jobs = append(jobs, Job{Name: "season:" + season, Run: func(ctx context.Context) error {
			_, err := svc.SeasonSummary(ctx, season)
			return err
		}})
	}

	jobs = append(jobs,
		Job{Name: "seasons:metrics", Run: func(ctx context.Context) error {
			_, err := svc.SeasonMetrics(ctx)
			return err
		}},
		Job{Name: "records:batting", Run: func(ctx context.Context) error {
			_, err := svc.TopRunScorers(ctx, limit)
			return err
		}},
		Job{Name: "records:bowling", Run: func(ctx context.Context) error {
			_, err := svc.TopWicketTakers(ctx, limit)
			return err
		}},
		Job{Name: "records:teams", Run: func(ctx context.Context) error {
			_, err := svc.MostSuccessfulTeams(ctx, limit)
			return err
		}},
		Job{Name: "records:champions", Run: func(ctx context.Context) error {
			_, err := svc.Champions(ctx)
			return err
		}},
		Job{Name: "records:eras", Run: func(ctx context.Context) error {
			_, err := svc.EraComparison(ctx)
			return err
		}},
		Job{Name: "dreamxi", Run: func(ctx context.Context) error {
			_, err := svc.DreamXI(ctx)
			return err
		}},
	)
	return jobs
}
