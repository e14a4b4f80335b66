package http

import (
	"net/http"

	"github.com/arenamatch/arenamatch/internal/config"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/tracker"
)

func NewServer(tracker *tracker.Tracker, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Tracker:        tracker,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an
	// authentication middleware.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /clear", Chain(s.ClearHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /players/{id}", Chain(s.RemovePlayerHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(s.ScheduleMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/quick", Chain(s.QuickMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/round", Chain(s.GenerateRoundHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches/{id}/result", Chain(s.RecordResultHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("POST /commentary", Chain(s.CommentaryHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify/standings", Chain(s.NotifyStandingsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
