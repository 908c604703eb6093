package handlers

import "net/http"

// Record kinds served by GetRecords
const (
	recordsBatting = "batting"
	recordsBowling = "bowling"
	recordsTeams   = "teams"
)

type recordsQuery struct {
	Kind  string `validate:"oneof=batting bowling teams"`
	Limit int    `validate:"min=1,max=100"`
}

// GetRecords returns an all-time leaderboard
// @Summary Get Records
// @Tags Records
// @Produce json
// @Param kind path string true "batting, bowling or teams"
// @Param limit query int false "Number of rows (1-100)" default(10)
// @Success 200 {array} object
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /records/{kind} [get]
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", defaultLimit)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	q := recordsQuery{Kind: pathParam(r, "kind"), Limit: limit}
	if !h.validate(w, q) {
		return
	}

	ctx := r.Context()
	var out interface{}
	switch q.Kind {
	case recordsBatting:
		out, err = h.stats.TopRunScorers(ctx, q.Limit)
	case recordsBowling:
		out, err = h.stats.TopWicketTakers(ctx, q.Limit)
	case recordsTeams:
		out, err = h.stats.MostSuccessfulTeams(ctx, q.Limit)
	}
	if err != nil {
		h.serviceError(w, err, "get records", "kind", q.Kind)
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// GetChampions returns the winner and runner-up of every season final
// @Summary Get Champions
// @Tags Records
// @Produce json
// @Success 200 {array} models.Champion
// @Router /records/champions [get]
func (h *Handler) GetChampions(w http.ResponseWriter, r *http.Request) {
	out, err := h.stats.Champions(r.Context())
	if err != nil {
		h.serviceError(w, err, "get champions")
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// GetEras compares scoring across the league's eras
// @Summary Get Era Comparison
// @Tags Records
// @Produce json
// @Success 200 {array} models.EraStats
// @Router /records/eras [get]
func (h *Handler) GetEras(w http.ResponseWriter, r *http.Request) {
	out, err := h.stats.EraComparison(r.Context())
	if err != nil {
		h.serviceError(w, err, "get era comparison")
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}
