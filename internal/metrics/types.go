package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	PlayersAdded             prometheus.Counter
	PlayersRemoved           prometheus.Counter
	MatchesScheduled         prometheus.Counter
	MatchesDeleted           prometheus.Counter
	ResultsRecorded          prometheus.Counter
	CommentaryRequests       prometheus.Counter
	CommentaryFailures       prometheus.Counter
	NotifSent                prometheus.Counter
	NotifFailed              prometheus.Counter
	StandingsComputeDuration prometheus.Histogram
	StartupTimeSeconds       prometheus.Gauge
}
