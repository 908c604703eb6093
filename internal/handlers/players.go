package handlers

import (
	"net/http"

	"github.com/crickstats/stats-api/internal/models"
)

type similarQuery struct {
	N int `validate:"min=1,max=50"`
}

type comparePlayersQuery struct {
	P1 string `validate:"required"`
	P2 string `validate:"required,nefield=P1"`
}

// GetPlayer returns the career batting and bowling aggregate for a player
// @Summary Get Player
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} models.PlayerAggregate
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{player} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "player")

	p, err := h.stats.Player(r.Context(), player)
	if err != nil {
		h.serviceError(w, err, "get player", "player", player)
		return
	}
	h.jsonResponse(w, http.StatusOK, p)
}

// GetPlayerSeasons returns a player's batting broken down by season
// @Summary Get Player Seasons
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {array} models.PlayerSeasonStats
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{player}/seasons [get]
func (h *Handler) GetPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "player")

	seasons, err := h.stats.PlayerSeasons(r.Context(), player)
	if err != nil {
		h.serviceError(w, err, "get player seasons", "player", player)
		return
	}
	h.jsonResponse(w, http.StatusOK, seasons)
}

// GetPlayerVsTeam returns a batter's record against one opponent
// @Summary Get Player vs Team
// @Description Found is false when the player never faced the team
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Param team path string true "Opposing team"
// @Success 200 {object} models.PlayerVsTeamStats
// @Router /players/{player}/vs/{team} [get]
func (h *Handler) GetPlayerVsTeam(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "player")
	team := pathParam(r, "team")

	stats, err := h.stats.PlayerVsTeam(r.Context(), player, team)
	if err != nil {
		h.serviceError(w, err, "get player vs team", "player", player, "team", team)
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}

// GetSimilarPlayers returns the nearest batters by career profile
// @Summary Get Similar Players
// @Description Available is false when the engine is not built or the player is unknown
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Param n query int false "Number of results (1-50)" default(5)
// @Success 200 {object} models.SimilarPlayersResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/{player}/similar [get]
func (h *Handler) GetSimilarPlayers(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "player")

	n, err := intQuery(r, "n", defaultSimilar)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "n must be an integer")
		return
	}
	q := similarQuery{N: n}
	if !h.validate(w, q) {
		return
	}

	similar, ok := h.similarity.FindSimilar(player, q.N)
	if similar == nil {
		similar = []models.SimilarPlayer{}
	}
	h.jsonResponse(w, http.StatusOK, models.SimilarPlayersResponse{
		Player:    player,
		Available: ok,
		Similar:   similar,
	})
}

// ComparePlayers compares two batters side by side
// @Summary Compare Players
// @Tags Compare
// @Produce json
// @Param p1 query string true "First player"
// @Param p2 query string true "Second player"
// @Success 200 {array} models.BatterComparison
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/compare [get]
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	q := comparePlayersQuery{P1: r.URL.Query().Get("p1"), P2: r.URL.Query().Get("p2")}
	if !h.validate(w, q) {
		return
	}

	out, err := h.stats.ComparePlayers(r.Context(), q.P1, q.P2)
	if err != nil {
		h.serviceError(w, err, "compare players", "p1", q.P1, "p2", q.P2)
		return
	}
	h.jsonResponse(w, http.StatusOK, out)
}
