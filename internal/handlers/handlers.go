package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/crickstats/stats-api/internal/logic"
	"github.com/crickstats/stats-api/internal/models"
)

// Default sizes for list endpoints
const (
	defaultLimit   = 10
	defaultSimilar = 5
)

// Predictor is the win probability estimator
type Predictor interface {
	Predict(team1, team2, venue string) models.WinProbability
	Diagnostics() models.ModelDiagnostics
}

// SimilarityFinder is the player similarity engine
type SimilarityFinder interface {
	FindSimilar(player string, k int) ([]models.SimilarPlayer, bool)
	Ready() bool
}

// WarmQueue exposes the cache-warming worker pool for readiness checks
type WarmQueue interface {
	QueueDepth() int
}

type Config struct {
	Stats      logic.StatsService
	Predictor  Predictor
	Similarity SimilarityFinder
	WorkerPool WarmQueue
	Logger     *zap.Logger
}

type Handler struct {
	stats      logic.StatsService
	predictor  Predictor
	similarity SimilarityFinder
	pool       WarmQueue
	logger     *zap.SugaredLogger
	validator  *validator.Validate
}

// New creates a Handler from its collaborators.
func New(cfg Config) *Handler {
	return &Handler{
		stats:      cfg.Stats,
		predictor:  cfg.Predictor,
		similarity: cfg.Similarity,
		pool:       cfg.WorkerPool,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps ErrNotFound to 404 and logs everything else as a 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error, op string, kv ...interface{}) {
	if errors.Is(err, logic.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Errorw("Failed to "+op, append(kv, "error", err)...)
	h.errorResponse(w, http.StatusInternalServerError, "Failed to "+op)
}

// validate runs struct validation and writes a 400 on failure.
func (h *Handler) validate(w http.ResponseWriter, v interface{}) bool {
	if err := h.validator.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid parameter: "+verrs[0].Field()+" ("+verrs[0].Tag()+")")
			return false
		}
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// pathParam returns the decoded chi URL parameter. chi routes on RawPath
// when it is set, and only then is the parameter still escaped.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
