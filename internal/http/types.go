package http

import (
	"net/http"

	"github.com/arenamatch/arenamatch/internal/config"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/tracker"
)

type Server struct {
	Tracker        *tracker.Tracker
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
