package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/utils/logging"
	"github.com/secmon-lab/chatdesk/pkg/utils/safe"
)

// Dashboard is the view state manager served by Server
type Dashboard interface {
	State() model.ViewState
	SetFilter(ctx context.Context, patch model.FilterPatch) error
	ToggleFilters() bool
	Refresh(ctx context.Context) error
	DeleteRow(ctx context.Context, id int64) (bool, error)
	EncodeExport() (string, []byte)
}

type Server struct {
	router    *chi.Mux
	dashboard Dashboard
	gatherer  prometheus.Gatherer
	loc       *time.Location
}

type Options func(*Server)

// WithMetrics exposes gatherer on /metrics
func WithMetrics(gatherer prometheus.Gatherer) Options {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithLocation sets the time zone of timestamps in the view
func WithLocation(loc *time.Location) Options {
	return func(s *Server) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func New(dashboard Dashboard, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		dashboard: dashboard,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		safe.Write(r.Context(), w, []byte("ok"))
	})

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", s.viewHandler)
		r.Post("/filters", s.filtersHandler)
		r.Post("/filters/toggle", s.toggleHandler)
		r.Post("/refresh", s.refreshHandler)
		r.Delete("/logs/{id}", s.deleteHandler)
		r.Get("/export.csv", s.exportHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
