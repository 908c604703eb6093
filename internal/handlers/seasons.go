package handlers

import "net/http"

// ListSeasons returns every season label in order
// @Summary List Seasons
// @Tags Seasons
// @Produce json
// @Success 200 {array} string
// @Router /seasons [get]
func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.stats.Seasons())
}

// GetSeasonMetrics returns per-season averages across the league
// @Summary Get Season Metrics
// @Tags Seasons
// @Produce json
// @Success 200 {array} models.SeasonMetrics
// @Router /seasons/metrics [get]
func (h *Handler) GetSeasonMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.stats.SeasonMetrics(r.Context())
	if err != nil {
		h.serviceError(w, err, "get season metrics")
		return
	}
	h.jsonResponse(w, http.StatusOK, metrics)
}

// GetSeasonSummary returns the champion, top performers and records of a season
// @Summary Get Season Summary
// @Tags Seasons
// @Produce json
// @Param season path string true "Season label"
// @Success 200 {object} models.SeasonSummary
// @Failure 404 {object} map[string]string "Not Found"
// @Router /seasons/{season}/summary [get]
func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	season := pathParam(r, "season")

	summary, err := h.stats.SeasonSummary(r.Context(), season)
	if err != nil {
		h.serviceError(w, err, "get season summary", "season", season)
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}

// CompareSeasons compares two seasons side by side
// @Summary Compare Seasons
// @Tags Compare
// @Produce json
// @Param a query string true "First season"
// @Param b query string true "Second season"
// @Success 200 {array} models.SeasonComparison
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /compare/seasons [get]
func (h *Handler) CompareSeasons(w http.ResponseWriter, r *http.Request) {
	q := compareQuery{A: r.URL.Query().Get("a"), B: r.URL.Query().Get("b")}
	if !h.validate(w, q) {
		return
	}

	out, err := h.stats.CompareSeasons(r.Context(), q.A, q.B)
	if err != nil {
		h.serviceError(w, err, "compare seasons", "a", q.A, "b", q.B)
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}
