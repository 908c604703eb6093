package handlers

import "net/http"

type predictQuery struct {
	Team1 string `validate:"required"`
	Team2 string `validate:"required,nefield=Team1"`
	Venue string `validate:"required"`
}

// GetPrediction returns win probabilities for a fixture
// @Summary Predict Match
// @Description Uses the trained model when available, otherwise the head-to-head heuristic
// @Tags Predictions
// @Produce json
// @Param team1 query string true "First team"
// @Param team2 query string true "Second team"
// @Param venue query string true "Venue"
// @Success 200 {object} models.WinProbability
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predict [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	q := predictQuery{
		Team1: r.URL.Query().Get("team1"),
		Team2: r.URL.Query().Get("team2"),
		Venue: r.URL.Query().Get("venue"),
	}
	if !h.validate(w, q) {
		return
	}

	h.jsonResponse(w, http.StatusOK, h.predictor.Predict(q.Team1, q.Team2, q.Venue))
}

// GetModel returns training diagnostics for the win predictor
// @Summary Get Model Diagnostics
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ModelDiagnostics
// @Router /model [get]
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.predictor.Diagnostics())
}
