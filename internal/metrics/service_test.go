package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncPlayersAdded()
	svc.IncPlayersAdded()
	svc.IncResultsRecorded()
	svc.SetStartupTime(1.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				values[mf.GetName()] = m.GetCounter().GetValue()
			}
			if m.GetGauge() != nil {
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["arena_players_added_total"])
	assert.Equal(t, 1.0, values["arena_results_recorded_total"])
	assert.Equal(t, 0.0, values["arena_matches_scheduled_total"])
	assert.Equal(t, 1.5, values["arena_startup_duration_seconds"])
}
