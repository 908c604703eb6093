package handlers

import (
	"net/http"

	"github.com/crickstats/stats-api/internal/logic"
	"github.com/crickstats/stats-api/internal/models"
)

type matchesQuery struct {
	Season   string
	Team     string `validate:"required_with=Opponent"`
	Opponent string `validate:"omitempty,nefield=Team"`
}

// ListMatches returns match cards filtered by season, team and opponent
// @Summary List Matches
// @Tags Matches
// @Produce json
// @Param season query string false "Season label"
// @Param team query string false "Team involved"
// @Param opponent query string false "Opponent of team"
// @Success 200 {array} models.MatchCard
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	q := matchesQuery{
		Season:   r.URL.Query().Get("season"),
		Team:     r.URL.Query().Get("team"),
		Opponent: r.URL.Query().Get("opponent"),
	}
	if !h.validate(w, q) {
		return
	}

	cards, err := h.stats.Matches(r.Context(), logic.MatchFilter{Season: q.Season, Team: q.Team, Opponent: q.Opponent})
	if err != nil {
		h.serviceError(w, err, "list matches")
		return
	}
	if cards == nil {
		cards = []models.MatchCard{}
	}
	h.jsonResponse(w, http.StatusOK, cards)
}

// GetDreamXI returns the all-time XI picked from the player table
// @Summary Get Dream XI
// @Tags Records
// @Produce json
// @Success 200 {object} models.DreamXI
// @Router /dreamxi [get]
func (h *Handler) GetDreamXI(w http.ResponseWriter, r *http.Request) {
	xi, err := h.stats.DreamXI(r.Context())
	if err != nil {
		h.serviceError(w, err, "get dream xi")
		return
	}
	h.jsonResponse(w, http.StatusOK, xi)
}
