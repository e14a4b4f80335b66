package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchCompleted EventType = "match-completed"
	EventPlayerRemoved  EventType = "player-removed"
)

// MatchCompletedEvent is published whenever a result is recorded.
type MatchCompletedEvent struct {
	MatchID   string `msgpack:"match_id"`
	Player1ID string `msgpack:"player1_id"`
	Player2ID string `msgpack:"player2_id"`
	Score1    int    `msgpack:"score1"`
	Score2    int    `msgpack:"score2"`
	Timestamp int64  `msgpack:"timestamp"`
}

// PlayerRemovedEvent is published whenever a player leaves the roster.
type PlayerRemovedEvent struct {
	PlayerID string `msgpack:"player_id"`
}
