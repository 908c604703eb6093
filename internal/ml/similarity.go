package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/crickstats/stats-api/internal/models"
)

// Similarity feature columns, in vector order.
const (
	ColTotalRuns      = "Total_Runs"
	ColBattingAverage = "Batting_Average"
	ColStrikeRate     = "Strike_Rate"
	ColMatches        = "Matches"
	ColBallsFaced     = "Balls_Faced"
)

// SimilarityColumns is the whitelist of columns the engine will use.
var SimilarityColumns = []string{ColTotalRuns, ColBattingAverage, ColStrikeRate, ColMatches, ColBallsFaced}

const minSimilarityColumns = 3

var ErrInsufficientFeatures = errors.New("insufficient similarity features")

// FeatureTable is a column-oriented player table. NaN marks a missing value.
type FeatureTable struct {
	Players []string
	Columns map[string][]float64
}

// FeatureTableFromStats projects the player stats table onto the whitelist.
func FeatureTableFromStats(players []models.PlayerAggregate) FeatureTable {
	t := FeatureTable{
		Players: make([]string, len(players)),
		Columns: make(map[string][]float64, len(SimilarityColumns)),
	}
	for _, c := range SimilarityColumns {
		t.Columns[c] = make([]float64, len(players))
	}
	for i, p := range players {
		t.Players[i] = p.Player
		t.Columns[ColTotalRuns][i] = float64(p.TotalRuns)
		t.Columns[ColBattingAverage][i] = p.BattingAverage
		t.Columns[ColStrikeRate][i] = p.StrikeRate
		t.Columns[ColMatches][i] = float64(p.Matches)
		t.Columns[ColBallsFaced][i] = float64(p.BallsFaced)
	}
	return t
}

// Scaler holds the fitted imputation and standardisation parameters.
type Scaler struct {
	Columns []string  `json:"columns"`
	Medians []float64 `json:"medians"`
	Means   []float64 `json:"means"`
	Scales  []float64 `json:"scales"`
}

// Transform imputes and standardises one raw row in Columns order.
func (s *Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		if math.IsNaN(v) {
			v = s.Medians[j]
		}
		out[j] = (v - s.Means[j]) / s.Scales[j]
	}
	return out
}

type similarityIndex struct {
	players []string
	byName  map[string]int
	vectors [][]float64
	norms   []float64
	scaler  *Scaler
}

// SimilarityEngine answers nearest-neighbour queries over standardised
// player features. Build is one-shot.
type SimilarityEngine struct {
	logger *zap.SugaredLogger
	once   sync.Once
	mu     sync.RWMutex
	index  *similarityIndex
	err    error
}

// NewSimilarityEngine returns an unbuilt engine.
func NewSimilarityEngine(logger *zap.Logger) *SimilarityEngine {
	return &SimilarityEngine{logger: logger.Sugar()}
}

// Build fits the engine. Only the first call has any effect; later calls
// return the first call's result.
func (e *SimilarityEngine) Build(table FeatureTable) error {
	e.once.Do(func() {
		idx, err := buildIndex(table)
		e.mu.Lock()
		e.index, e.err = idx, err
		e.mu.Unlock()
		if err != nil {
			e.logger.Warnw("Similarity engine unavailable", "error", err)
			return
		}
		e.logger.Infow("Similarity engine built",
			"players", len(idx.players),
			"columns", idx.scaler.Columns,
		)
	})
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err
}

// Ready reports whether FindSimilar can answer.
func (e *SimilarityEngine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index != nil
}

// Scaler returns the fitted parameters, or nil before a successful Build.
func (e *SimilarityEngine) Scaler() *Scaler {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.index == nil {
		return nil
	}
	return e.index.scaler
}

func buildIndex(table FeatureTable) (*similarityIndex, error) {
	var cols []string
	for _, c := range SimilarityColumns {
		if v, ok := table.Columns[c]; ok && len(v) == len(table.Players) {
			cols = append(cols, c)
		}
	}
	if len(cols) < minSimilarityColumns {
		return nil, fmt.Errorf("%w: %d columns present, need %d", ErrInsufficientFeatures, len(cols), minSimilarityColumns)
	}
	if len(table.Players) == 0 {
		return nil, fmt.Errorf("%w: no players", ErrInsufficientFeatures)
	}

	// A repeated name keeps its first row only.
	var rows []int
	seen := make(map[string]bool, len(table.Players))
	for i, p := range table.Players {
		if !seen[p] {
			seen[p] = true
			rows = append(rows, i)
		}
	}

	n := len(rows)
	scaler := &Scaler{
		Columns: cols,
		Medians: make([]float64, len(cols)),
		Means:   make([]float64, len(cols)),
		Scales:  make([]float64, len(cols)),
	}

	// Impute column by column, then fit mean and population std.
	filled := make([][]float64, len(cols))
	for j, c := range cols {
		raw := make([]float64, n)
		for i, r := range rows {
			raw[i] = table.Columns[c][r]
		}
		present := make(stats.Float64Data, 0, n)
		for _, v := range raw {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}
		median := 0.0
		if len(present) > 0 {
			m, err := stats.Median(present)
			if err != nil {
				return nil, fmt.Errorf("median of %s: %w", c, err)
			}
			median = m
		}

		col := make(stats.Float64Data, n)
		for i, v := range raw {
			if math.IsNaN(v) {
				v = median
			}
			col[i] = v
		}
		mean, err := stats.Mean(col)
		if err != nil {
			return nil, fmt.Errorf("mean of %s: %w", c, err)
		}
		std, err := stats.StandardDeviationPopulation(col)
		if err != nil {
			return nil, fmt.Errorf("std of %s: %w", c, err)
		}
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		scaler.Medians[j], scaler.Means[j], scaler.Scales[j] = median, mean, std
		filled[j] = col
	}

	idx := &similarityIndex{
		players: make([]string, n),
		byName:  make(map[string]int, n),
		vectors: make([][]float64, n),
		norms:   make([]float64, n),
		scaler:  scaler,
	}
	for i, r := range rows {
		p := table.Players[r]
		idx.players[i] = p
		idx.byName[p] = i
		v := make([]float64, len(cols))
		for j := range cols {
			v[j] = (filled[j][i] - scaler.Means[j]) / scaler.Scales[j]
		}
		idx.vectors[i] = v
		idx.norms[i] = floats.Norm(v, 2)
	}
	return idx, nil
}

// FindSimilar returns up to k players closest to player by cosine
// similarity, scaled to [-100, 100]. The player is never in its own result.
// The bool is false when the engine is unbuilt or the player unknown.
func (e *SimilarityEngine) FindSimilar(player string, k int) ([]models.SimilarPlayer, bool) {
	e.mu.RLock()
	idx := e.index
	e.mu.RUnlock()
	if idx == nil {
		similarityLookups.WithLabelValues("unavailable").Inc()
		return nil, false
	}
	self, ok := idx.byName[player]
	if !ok {
		similarityLookups.WithLabelValues("unknown_player").Inc()
		return nil, false
	}

	type scored struct {
		pos   int
		score float64
	}
	candidates := make([]scored, 0, len(idx.players)-1)
	for i := range idx.players {
		if i == self {
			continue
		}
		candidates = append(candidates, scored{pos: i, score: cosine(idx.vectors[self], idx.vectors[i], idx.norms[self], idx.norms[i]) * 100})
	}
	sort.SliceStable(candidates, func(a, b int) bool { return candidates[a].score > candidates[b].score })

	if k < 0 {
		k = 0
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]models.SimilarPlayer, k)
	for i := range out {
		out[i] = models.SimilarPlayer{Player: idx.players[candidates[i].pos], Score: candidates[i].score}
	}
	similarityLookups.WithLabelValues("ok").Inc()
	return out, true
}

// cosine is 0 when either vector has zero length.
func cosine(a, b []float64, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
