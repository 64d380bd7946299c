package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/wellness-monitor/docs"
	"github.com/blaisecz/wellness-monitor/internal/api/handler"
	"github.com/blaisecz/wellness-monitor/internal/api/middleware"
	"github.com/blaisecz/wellness-monitor/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	deviceHandler   *handler.DeviceHandler
	readingHandler  *handler.ReadingHandler
	wellnessHandler *handler.WellnessHandler
	coachingHandler *handler.CoachingHandler
	metrics         *metrics.Manager
	logger          *zap.Logger
}

func NewRouter(
	deviceHandler *handler.DeviceHandler,
	readingHandler *handler.ReadingHandler,
	wellnessHandler *handler.WellnessHandler,
	coachingHandler *handler.CoachingHandler,
	m *metrics.Manager,
	logger *zap.Logger,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		deviceHandler:   deviceHandler,
		readingHandler:  readingHandler,
		wellnessHandler: wellnessHandler,
		coachingHandler: coachingHandler,
		metrics:         m,
		logger:          logger,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger))
	if rt.metrics != nil {
		r.Use(middleware.Metrics(rt.metrics))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if rt.metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// File-backed sensor source
	r.Get("/sensors", rt.wellnessHandler.Sensors)
	r.Route("/wellness", func(r chi.Router) {
		r.Get("/", rt.wellnessHandler.Live)
		r.Get("/demo", rt.wellnessHandler.Demo)
		r.Get("/{analysis}", rt.wellnessHandler.Analysis)
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Post("/", rt.deviceHandler.Create)

			r.Route("/{deviceId}", func(r chi.Router) {
				r.Get("/", rt.deviceHandler.GetByID)

				r.Route("/readings", func(r chi.Router) {
					r.Post("/", rt.readingHandler.Ingest)
					r.Get("/", rt.readingHandler.List)
					r.Post("/fit", rt.readingHandler.IngestFIT)
				})
				r.Get("/sensors/latest", rt.readingHandler.Latest)

				r.Route("/wellness", func(r chi.Router) {
					r.Get("/", rt.wellnessHandler.DeviceLive)
					r.Get("/export.xlsx", rt.wellnessHandler.Export)
					r.Get("/coaching", rt.coachingHandler.Get)
					r.Post("/coaching/feedback", rt.coachingHandler.Feedback)
					r.Get("/{analysis}", rt.wellnessHandler.DeviceAnalysis)
				})
			})
		})
	})

	return r
}
