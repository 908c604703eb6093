package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerSecond int
	RateLimitBurst     int
}

// NewRouter builds the full HTTP surface: probes, metrics, the OpenAPI
// document and the rate-limited /api/v1 routes.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/doc.json", h.SwaggerDoc)

	r.Group(func(r chi.Router) {
		if opts.RateLimitPerSecond > 0 {
			r.Use(h.RateLimitMiddleware(float64(opts.RateLimitPerSecond), max(opts.RateLimitBurst, 1)))
		}
		h.Routes(r)
	})
	return r
}

// Routes mounts the versioned API on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{team}/performance", h.GetTeamPerformance)

		r.Get("/venues", h.ListVenues)
		r.Get("/venues/{venue}/stats", h.GetVenueStats)

		r.Get("/seasons", h.ListSeasons)
		r.Get("/seasons/metrics", h.GetSeasonMetrics)
		r.Get("/seasons/{season}/summary", h.GetSeasonSummary)

		r.Get("/matches", h.ListMatches)

		r.Get("/players/compare", h.ComparePlayers)
		r.Get("/players/{player}", h.GetPlayer)
		r.Get("/players/{player}/seasons", h.GetPlayerSeasons)
		r.Get("/players/{player}/vs/{team}", h.GetPlayerVsTeam)
		r.Get("/players/{player}/similar", h.GetSimilarPlayers)

		r.Get("/predict", h.GetPrediction)
		r.Get("/model", h.GetModel)

		r.Get("/records/champions", h.GetChampions)
		r.Get("/records/eras", h.GetEras)
		r.Get("/records/{kind}", h.GetRecords)

		r.Get("/compare/seasons", h.CompareSeasons)
		r.Get("/compare/teams", h.CompareTeams)

		r.Get("/dreamxi", h.GetDreamXI)
	})
}

// SwaggerDoc serves the registered OpenAPI document
func (h *Handler) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.errorResponse(w, http.StatusNotFound, "API documentation not registered")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
