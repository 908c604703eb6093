package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/cache"
	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/logic"
	"github.com/crickstats/stats-api/internal/models"
)

func TestBarChartSVG(t *testing.T) {
	var s series
	s.add("2008", 300.5)
	s.add("R & D", 150)

	svg := barChartSVG("Runs <per> match", s, "#fff")
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "Runs &lt;per&gt; match")
	assert.Contains(t, svg, "R &amp; D")
	assert.Contains(t, svg, ">300.5<")
	assert.Contains(t, svg, ">150<")
	assert.Equal(t, 2, strings.Count(svg, `rx="4"`))
}

func TestGenerate(t *testing.T) {
	day := time.Date(2010, 4, 1, 0, 0, 0, 0, time.UTC)
	ds := dataset.New(
		[]models.Match{
			{ID: "1", Season: "2010", Date: day, Team1: "A", Team2: "B", Venue: "X", Winner: "A", Team1Runs: 10, Team2Runs: 4},
		},
		[]models.Delivery{
			{MatchID: "1", Inning: 1, Batter: "P1", Bowler: "Q1", BattingTeam: "A", BowlingTeam: "B", BatsmanRuns: 6, TotalRuns: 6},
		},
	)
	svc := logic.NewStatsService(ds, cache.NewMemoryStore(time.Minute), zap.NewNop())

	dir := t.TempDir()
	written, err := generate(context.Background(), svc, dir, zap.NewNop().Sugar())
	require.NoError(t, err)

	// Nobody took a wicket, so that chart is skipped.
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "season_runs.svg"),
		filepath.Join(dir, "top_run_scorers.svg"),
		filepath.Join(dir, "team_wins.svg"),
	}, written)

	body, err := os.ReadFile(filepath.Join(dir, "top_run_scorers.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "P1")
}
