package tracker

import (
	"github.com/arenamatch/arenamatch/internal/commentary"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/notifier"
	"github.com/arenamatch/arenamatch/internal/pairing"
	"github.com/arenamatch/arenamatch/internal/pubsub"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Tracker coordinates the tournament workflow: roster and ledger
// mutations, pairing, standings, commentary and the side effects that
// follow a recorded result.
type Tracker struct {
	store       tournament.Store
	pairing     *pairing.Generator
	commentator commentary.Commentator
	notifier    notifier.Notifier
	pubsub      pubsub.PubSubClient
	metrics     metrics.Metrics
}
