package handlers

import (
	"net/http"
)

type compareQuery struct {
	A string `validate:"required"`
	B string `validate:"required,nefield=A"`
}

// ListTeams returns every team in the dataset
// @Summary List Teams
// @Tags Teams
// @Produce json
// @Success 200 {array} string
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.stats.Teams())
}

// GetTeamPerformance returns win/loss, home/away and toss impact figures
// @Summary Get Team Performance
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} models.TeamPerformance
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{team}/performance [get]
func (h *Handler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	team := pathParam(r, "team")

	perf, err := h.stats.TeamPerformance(r.Context(), team)
	if err != nil {
		h.serviceError(w, err, "get team performance", "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, perf)
}

// CompareTeams compares two teams side by side
// @Summary Compare Teams
// @Tags Compare
// @Produce json
// @Param a query string true "First team"
// @Param b query string true "Second team"
// @Success 200 {array} models.TeamComparison
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /compare/teams [get]
func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	q := compareQuery{A: r.URL.Query().Get("a"), B: r.URL.Query().Get("b")}
	if !h.validate(w, q) {
		return
	}

	out, err := h.stats.CompareTeams(r.Context(), q.A, q.B)
	if err != nil {
		h.serviceError(w, err, "compare teams", "a", q.A, "b", q.B)
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}
