// Command chartgen renders SVG bar charts from the dataset.
package main

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/cache"
	"github.com/crickstats/stats-api/internal/config"
	"github.com/crickstats/stats-api/internal/dataset"
	"github.com/crickstats/stats-api/internal/logic"
)

const topN = 10

type series struct {
	labels []string
	values []float64
}

func (s *series) add(label string, v float64) {
	s.labels = append(s.labels, label)
	s.values = append(s.values, v)
}

type chart struct {
	file  string
	title string
	color string
	build func(ctx context.Context, svc logic.StatsService) (series, error)
}

var charts = []chart{
	{
		file:  "season_runs.svg",
		title: "Average Runs per Match by Season",
		color: "#4a90e2",
		build: func(ctx context.Context, svc logic.StatsService) (series, error) {
			var s series
			metrics, err := svc.SeasonMetrics(ctx)
			for _, m := range metrics {
				s.add(m.Season, m.AvgRunsPerMatch)
			}
			return s, err
		},
	},
	{
		file:  "top_run_scorers.svg",
		title: "Top Run Scorers",
		color: "#e67e22",
		build: func(ctx context.Context, svc logic.StatsService) (series, error) {
			var s series
			rows, err := svc.TopRunScorers(ctx, topN)
			for _, r := range rows {
				s.add(r.Player, float64(r.Runs))
			}
			return s, err
		},
	},
	{
		file:  "top_wicket_takers.svg",
		title: "Top Wicket Takers",
		color: "#e74c3c",
		build: func(ctx context.Context, svc logic.StatsService) (series, error) {
			var s series
			rows, err := svc.TopWicketTakers(ctx, topN)
			for _, r := range rows {
				s.add(r.Player, float64(r.Wickets))
			}
			return s, err
		},
	},
	{
		file:  "team_wins.svg",
		title: "Most Successful Teams (Wins)",
		color: "#27ae60",
		build: func(ctx context.Context, svc logic.StatsService) (series, error) {
			var s series
			rows, err := svc.MostSuccessfulTeams(ctx, topN)
			for _, r := range rows {
				s.add(r.Team, float64(r.Wins))
			}
			return s, err
		},
	},
}

func generate(ctx context.Context, svc logic.StatsService, outDir string, logger *zap.SugaredLogger) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}

	var written []string
	for _, c := range charts {
		s, err := c.build(ctx, svc)
		if err != nil {
			return written, fmt.Errorf("%s: %w", c.file, err)
		}
		if len(s.labels) == 0 {
			logger.Infow("No data for chart", "chart", c.file)
			continue
		}
		path := filepath.Join(outDir, c.file)
		if err := os.WriteFile(path, []byte(barChartSVG(c.title, s, c.color)), 0644); err != nil {
			return written, err
		}
		logger.Infow("Chart generated", "path", path)
		written = append(written, path)
	}
	return written, nil
}

func barChartSVG(title string, s series, color string) string {
	width := 600
	height := 400
	padding := 50
	barWidth := (width - 2*padding) / len(s.labels)
	maxBarHeight := height - 2*padding

	maxVal := 0.0
	for _, v := range s.values {
		maxVal = max(maxVal, v)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height, width, height)
	sb.WriteString(`<rect width="100%" height="100%" fill="#1a1a1a" />`)
	fmt.Fprintf(&sb, `<text x="%d" y="30" fill="white" font-family="Arial" font-size="20" text-anchor="middle">%s</text>`, width/2, html.EscapeString(title))

	for i, val := range s.values {
		barHeight := 0
		if maxVal > 0 {
			barHeight = int(val / maxVal * float64(maxBarHeight))
		}
		x := padding + i*barWidth
		y := height - padding - barHeight
		cx := x + barWidth/2

		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" rx="4" />`, x+5, y, barWidth-10, barHeight, color)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="white" font-family="Arial" font-size="12" text-anchor="end" transform="rotate(-45 %d %d)">%s</text>`,
			cx, height-padding+20, cx, height-padding+20, html.EscapeString(s.labels[i]))
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="white" font-family="Arial" font-size="10" text-anchor="middle">%s</text>`, cx, y-5, formatValue(val))
	}

	fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="white" stroke-width="2" />`, padding, height-padding, width-padding, height-padding)
	sb.WriteString(`</svg>`)
	return sb.String()
}

// formatValue drops the decimals from whole numbers.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func main() {
	var outDir string

	cmd := &cobra.Command{
		Use:          "chartgen",
		Short:        "Render SVG charts from the dataset",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ds, err := dataset.Load(cmd.Context(), cfg.MatchesPath(), cfg.DeliveriesPath())
			if err != nil {
				return err
			}
			svc := logic.NewStatsService(ds, cache.NewMemoryStore(time.Hour), logger)
			_, err = generate(cmd.Context(), svc, outDir, logger.Sugar())
			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "web/static/img", "output directory")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
