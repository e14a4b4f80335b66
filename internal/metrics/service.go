package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_players_added_total",
			Help: "The total number of players added to the roster.",
		}),
		PlayersRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_players_removed_total",
			Help: "The total number of players removed from the roster.",
		}),
		MatchesScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_matches_scheduled_total",
			Help: "The total number of matches scheduled.",
		}),
		MatchesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_matches_deleted_total",
			Help: "The total number of matches deleted, cascades included.",
		}),
		ResultsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_results_recorded_total",
			Help: "The total number of match results recorded.",
		}),
		CommentaryRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_commentary_requests_total",
			Help: "The total number of commentary generation requests.",
		}),
		CommentaryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_commentary_failures_total",
			Help: "The total number of commentary requests that fell back to the fixed message.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StandingsComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arena_standings_compute_duration_seconds",
			Help:    "The duration of a full standings recomputation.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arena_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayersAdded,
		s.PlayersRemoved,
		s.MatchesScheduled,
		s.MatchesDeleted,
		s.ResultsRecorded,
		s.CommentaryRequests,
		s.CommentaryFailures,
		s.NotifSent,
		s.NotifFailed,
		s.StandingsComputeDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlayersAdded() {
	s.PlayersAdded.Inc()
}

func (s *Service) IncPlayersRemoved() {
	s.PlayersRemoved.Inc()
}

func (s *Service) IncMatchesScheduled() {
	s.MatchesScheduled.Inc()
}

func (s *Service) IncMatchesDeleted() {
	s.MatchesDeleted.Inc()
}

func (s *Service) IncResultsRecorded() {
	s.ResultsRecorded.Inc()
}

func (s *Service) IncCommentaryRequests() {
	s.CommentaryRequests.Inc()
}

func (s *Service) IncCommentaryFailures() {
	s.CommentaryFailures.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveStandingsComputeDuration(duration float64) {
	s.StandingsComputeDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
