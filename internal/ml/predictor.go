// Package ml holds the win probability estimator and the player similarity
// engine. Both are built once and are read-only afterwards.
package ml

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/models"
)

const (
	minTrainingRows = 10
	testFraction    = 0.2
	venueWeight     = 0.2
)

// PredictorOptions configures a WinPredictor.
type PredictorOptions struct {
	Forest ForestOptions
	// LiveFeatures enables the trained path for queries by building the
	// feature vector from the full history.
	LiveFeatures bool
	// SplitSeed drives the train/test shuffle.
	SplitSeed int64
}

// DefaultPredictorOptions enables live features and seeds the split with 42.
func DefaultPredictorOptions() PredictorOptions {
	return PredictorOptions{Forest: DefaultForestOptions(), LiveFeatures: true, SplitSeed: 42}
}

// trainedModel is present only when training succeeded.
type trainedModel struct {
	forest    *RandomForest
	teams     *encoder
	venues    *encoder
	decisions *encoder
	classes   *encoder
}

type predictorState struct {
	history history
	model   *trainedModel
	diag    models.ModelDiagnostics
}

// WinPredictor forecasts a fixture. Train runs once; later calls are ignored.
// Without a trained model every query takes the head-to-head heuristic.
type WinPredictor struct {
	opts   PredictorOptions
	logger *zap.SugaredLogger
	once   sync.Once
	state  atomic.Pointer[predictorState]
}

// NewWinPredictor returns an untrained predictor that answers with the heuristic.
func NewWinPredictor(opts PredictorOptions, logger *zap.Logger) *WinPredictor {
	p := &WinPredictor{opts: opts, logger: logger.Sugar()}
	p.state.Store(&predictorState{diag: models.ModelDiagnostics{
		Reason:       "not trained",
		LiveFeatures: opts.LiveFeatures,
	}})
	return p
}

// Train engineers features from decided matches and fits the forest. Fewer
// than 10 rows, or any failure while fitting, leave the predictor on the
// heuristic for its whole lifetime. The delivery table is accepted for
// interface stability; no current feature uses it.
func (p *WinPredictor) Train(matches []models.Match, _ []models.Delivery) {
	p.once.Do(func() {
		start := time.Now()
		st := &predictorState{
			history: newHistory(matches),
			diag: models.ModelDiagnostics{
				RunID:        uuid.NewString(),
				LiveFeatures: p.opts.LiveFeatures,
			},
		}

		model, err := p.fit(st)
		st.diag.TrainedAt = time.Now().UTC()
		st.diag.TrainingMillis = time.Since(start).Milliseconds()
		if err != nil {
			st.diag.Reason = err.Error()
			p.logger.Warnw("Win predictor untrained, using heuristic",
				"run_id", st.diag.RunID,
				"reason", err,
				"feature_rows", st.diag.FeatureRows,
			)
			trainingOutcome.WithLabelValues("untrained").Inc()
		} else {
			st.model = model
			st.diag.Trained = true
			p.logger.Infow("Win predictor trained",
				"run_id", st.diag.RunID,
				"train_rows", st.diag.TrainRows,
				"test_rows", st.diag.TestRows,
				"train_accuracy", st.diag.TrainAccuracy,
				"test_accuracy", st.diag.TestAccuracy,
				"duration_ms", st.diag.TrainingMillis,
			)
			trainingOutcome.WithLabelValues("trained").Inc()
		}
		p.state.Store(st)
	})
}

// fit never panics; a panic inside the forest becomes an error.
func (p *WinPredictor) fit(st *predictorState) (model *trainedModel, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("model fit failed: %v", r)
		}
	}()

	var decided []models.Match
	for i := range st.history {
		if st.history[i].HasWinner() {
			decided = append(decided, st.history[i])
		}
	}
	st.diag.FeatureRows = len(decided)
	if len(decided) < minTrainingRows {
		return nil, fmt.Errorf("insufficient data: %d feature rows, need %d", len(decided), minTrainingRows)
	}

	var teamLabels, venueLabels, decisionLabels, winners []string
	for _, m := range decided {
		teamLabels = append(teamLabels, m.Team1, m.Team2, m.TossWinner)
		venueLabels = append(venueLabels, m.Venue)
		decisionLabels = append(decisionLabels, m.TossDecision)
		winners = append(winners, m.Winner)
	}
	model = &trainedModel{
		teams:     newEncoder(teamLabels),
		venues:    newEncoder(venueLabels),
		decisions: newEncoder(decisionLabels),
		classes:   newEncoder(winners),
	}

	X := make([][]float64, len(decided))
	y := make([]int, len(decided))
	for i, m := range decided {
		t1, _ := model.teams.code(m.Team1)
		t2, _ := model.teams.code(m.Team2)
		tw, _ := model.teams.code(m.TossWinner)
		v, _ := model.venues.code(m.Venue)
		d, _ := model.decisions.code(m.TossDecision)
		X[i] = vector(t1, t2, v, tw, d, st.history.signalsBefore(m.Date, m.Team1, m.Team2, m.Venue))
		y[i], _ = model.classes.code(m.Winner)
	}

	trainIdx, testIdx := split(len(X), p.opts.SplitSeed)
	Xtr, ytr := subset(X, y, trainIdx)
	Xte, yte := subset(X, y, testIdx)

	forest, err := FitForest(Xtr, ytr, len(model.classes.labels), p.opts.Forest)
	if err != nil {
		return nil, fmt.Errorf("model fit failed: %w", err)
	}
	model.forest = forest

	st.diag.TrainRows = len(Xtr)
	st.diag.TestRows = len(Xte)
	st.diag.TrainAccuracy = forest.Accuracy(Xtr, ytr)
	st.diag.TestAccuracy = forest.Accuracy(Xte, yte)
	st.diag.Classes = model.classes.labels
	return model, nil
}

// split shuffles row indexes with a fixed seed and holds out ceil(20%).
func split(n int, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testFraction))
	return perm[nTest:], perm[:nTest]
}

func subset(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for i, j := range idx {
		xs[i] = X[j]
		ys[i] = y[j]
	}
	return xs, ys
}

// Diagnostics reports training results. Accuracy is informational only.
func (p *WinPredictor) Diagnostics() models.ModelDiagnostics {
	return p.state.Load().diag
}

// Trained reports whether the model path is available.
func (p *WinPredictor) Trained() bool {
	return p.state.Load().model != nil
}

// Predict returns win probabilities summing to 100. It never fails: every
// problem on the model path falls through to the heuristic.
func (p *WinPredictor) Predict(team1, team2, venue string) models.WinProbability {
	st := p.state.Load()
	out := models.WinProbability{Team1: team1, Team2: team2, Venue: venue}

	if p.opts.LiveFeatures && st.model != nil {
		if p1, p2, ok := p.predictModel(st, team1, team2, venue); ok {
			out.Team1Prob, out.Team2Prob, out.Method = p1, p2, models.MethodModel
			predictions.WithLabelValues(models.MethodModel).Inc()
			return out
		}
	}

	out.Team1Prob, out.Team2Prob = heuristic(st.history, team1, team2, venue)
	out.Method = models.MethodHeuristic
	predictions.WithLabelValues(models.MethodHeuristic).Inc()
	return out
}

// predictModel builds the live feature vector and averages class
// probabilities over the four possible toss outcomes.
func (p *WinPredictor) predictModel(st *predictorState, team1, team2, venue string) (p1, p2 float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorw("Model prediction panicked, using heuristic", "panic", r)
			p1, p2, ok = 0, 0, false
		}
	}()

	m := st.model
	t1, ok1 := m.teams.code(team1)
	t2, ok2 := m.teams.code(team2)
	v, ok3 := m.venues.code(venue)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, false
	}

	var decisions []int
	for _, d := range []string{models.TossBat, models.TossField} {
		if c, ok := m.decisions.code(d); ok {
			decisions = append(decisions, c)
		}
	}
	if len(decisions) == 0 {
		return 0, 0, false
	}

	sig := st.history.signalsNow(team1, team2, venue)
	probs := make([]float64, m.forest.NumClasses())
	n := 0
	for _, tw := range []int{t1, t2} {
		for _, d := range decisions {
			for k, pr := range m.forest.PredictProba(vector(t1, t2, v, tw, d, sig)) {
				probs[k] += pr
			}
			n++
		}
	}

	if c, found := m.classes.code(team1); found {
		p1 = probs[c] / float64(n)
	}
	if c, found := m.classes.code(team2); found {
		p2 = probs[c] / float64(n)
	}
	total := p1 + p2
	if total <= 0 || math.IsNaN(total) {
		return 0, 0, false
	}
	return p1 / total * 100, 100 - p1/total*100, true
}

// heuristic splits by head-to-head decisive wins (50/50 without any), then
// blends in each side's share of wins at the venue with weight 0.2 when
// either side has won there.
func heuristic(h history, team1, team2, venue string) (float64, float64) {
	var h2h1, h2h2, v1, v2 int
	for i := range h {
		m := &h[i]
		if m.Involves(team1) && m.Involves(team2) {
			switch m.Winner {
			case team1:
				h2h1++
			case team2:
				h2h2++
			}
		}
		if m.Venue == venue {
			switch m.Winner {
			case team1:
				v1++
			case team2:
				v2++
			}
		}
	}

	p1, p2 := 50.0, 50.0
	if total := h2h1 + h2h2; total > 0 {
		p1 = float64(h2h1) / float64(total) * 100
		p2 = float64(h2h2) / float64(total) * 100
	}

	if total := v1 + v2; total > 0 {
		p1 = p1*(1-venueWeight) + float64(v1)/float64(total)*venueWeight*100
		p2 = p2*(1-venueWeight) + float64(v2)/float64(total)*venueWeight*100
	}

	if total := p1 + p2; total > 0 {
		p1 = p1 / total * 100
		p2 = p2 / total * 100
	}
	return p1, p2
}
