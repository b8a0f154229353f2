package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wrtactics/wr-tactics-api/internal/api/handler"
	apimw "github.com/wrtactics/wr-tactics-api/internal/api/middleware"
	"github.com/wrtactics/wr-tactics-api/internal/metrics"
	"github.com/wrtactics/wr-tactics-api/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	limiter *ratelimiter.Limiter,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	onRequest, onWelcome := m.Hooks()
	useObservability(r, logger, onRequest)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// --- handler instances ---
	rh := handler.NewRootHandler(onWelcome)
	hh := handler.NewHealthHandler()

	// --- operational routes (never rate limited) ---
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// --- API routes ---
	r.Group(func(r chi.Router) {
		if !limiter.Unlimited() {
			r.Use(apimw.RateLimit(limiter, handler.TooManyRequests))
		}
		r.Get("/", rh.Root)
	})

	return r
}

// useObservability attaches the global middleware. Recoverer sits inside
// the logger and instrumentation so a recovered panic is still logged and
// counted as a 500.
func useObservability(r chi.Router, logger *zap.Logger, onRequest apimw.RequestObserver) {
	r.Use(chimw.RealIP) // trust X-Forwarded-For / X-Real-IP
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(onRequest))
	r.Use(chimw.Recoverer) // recover panics, return 500
}
