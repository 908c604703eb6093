package models

import "time"

// Prediction methods reported alongside a win probability.
const (
	MethodModel     = "model"
	MethodHeuristic = "heuristic"
)

// WinProbability forecasts a fixture. Team1Prob + Team2Prob == 100.
type WinProbability struct {
	Team1     string  `json:"team1"`
	Team2     string  `json:"team2"`
	Venue     string  `json:"venue"`
	Team1Prob float64 `json:"team1_prob"`
	Team2Prob float64 `json:"team2_prob"`
	Method    string  `json:"method"`
}

// Favourite returns the team with the higher probability, or "" on a tie.
func (w WinProbability) Favourite() string {
	switch {
	case w.Team1Prob > w.Team2Prob:
		return w.Team1
	case w.Team2Prob > w.Team1Prob:
		return w.Team2
	}
	return ""
}

// ModelDiagnostics describes the state of the win predictor.
type ModelDiagnostics struct {
	RunID          string    `json:"run_id"`
	Trained        bool      `json:"trained"`
	Reason         string    `json:"reason,omitempty"`
	FeatureRows    int       `json:"feature_rows"`
	TrainRows      int       `json:"train_rows"`
	TestRows       int       `json:"test_rows"`
	TrainAccuracy  float64   `json:"train_accuracy"`
	TestAccuracy   float64   `json:"test_accuracy"`
	Classes        []string  `json:"classes,omitempty"`
	LiveFeatures   bool      `json:"live_features"`
	TrainedAt      time.Time `json:"trained_at"`
	TrainingMillis int64     `json:"training_ms"`
}

// SimilarPlayer is one nearest-neighbour result. Score is cosine similarity
// times 100 and may be negative.
type SimilarPlayer struct {
	Player string  `json:"player"`
	Score  float64 `json:"score"`
}

// SimilarPlayersResponse wraps a lookup; Available is false when the engine
// could not answer.
type SimilarPlayersResponse struct {
	Player    string          `json:"player"`
	Available bool            `json:"available"`
	Similar   []SimilarPlayer `json:"similar"`
}
