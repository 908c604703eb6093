package handlers

import "net/http"

// ListVenues returns every venue in the dataset
// @Summary List Venues
// @Tags Venues
// @Produce json
// @Success 200 {array} string
// @Router /venues [get]
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.stats.Venues())
}

// GetVenueStats returns scoring, toss and pitch figures for a venue
// @Summary Get Venue Stats
// @Tags Venues
// @Produce json
// @Param venue path string true "Venue name"
// @Success 200 {object} models.VenueStats
// @Failure 404 {object} map[string]string "Not Found"
// @Router /venues/{venue}/stats [get]
func (h *Handler) GetVenueStats(w http.ResponseWriter, r *http.Request) {
	venue := pathParam(r, "venue")

	stats, err := h.stats.VenueStats(r.Context(), venue)
	if err != nil {
		h.serviceError(w, err, "get venue stats", "venue", venue)
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}
