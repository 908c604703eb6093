package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. The API is ready once a non-empty dataset is
// loaded; the model and similarity engine report their state but may
// legitimately be degraded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]bool{
		"dataset":    len(h.stats.Teams()) > 0,
		"model":      h.predictor.Diagnostics().Trained,
		"similarity": h.similarity.Ready(),
	}

	status := http.StatusOK
	if !checks["dataset"] {
		status = http.StatusServiceUnavailable
	}

	queueDepth := 0
	if h.pool != nil {
		queueDepth = h.pool.QueueDepth()
	}

	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      status == http.StatusOK,
		"checks":     checks,
		"queueDepth": queueDepth,
	})
}

// RequestID tags every request and response with an X-Request-ID,
// keeping one supplied by the caller.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware sheds requests above a global token bucket rate.
func (h *Handler) RateLimitMiddleware(perSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				h.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Logger logs each request at debug level with its status and duration.
func (h *Handler) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debugw("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", r.Header.Get("X-Request-ID"),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
