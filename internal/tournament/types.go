package tournament

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the tournament.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// MatchStatus represents the lifecycle state of a match. The only
// transition is Pending -> Completed.
type MatchStatus string

const (
	StatusPending   MatchStatus = "PENDING"
	StatusCompleted MatchStatus = "COMPLETED"
)

// Player is a registered tournament participant.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinedAt int64  `json:"joined_at"`
}

// Match is a head-to-head pairing between two players. Scores are nil
// while the match is pending and set atomically when a result is recorded.
// Completed matches may reference players that have since been removed
// from the roster; they are kept as history.
type Match struct {
	ID        string      `json:"id"`
	Player1ID string      `json:"player1_id"`
	Player2ID string      `json:"player2_id"`
	Score1    *int        `json:"score1"`
	Score2    *int        `json:"score2"`
	Status    MatchStatus `json:"status"`
	Timestamp int64       `json:"timestamp"`
}

var (
	// ErrInvalidPairing is returned when a match is proposed between a
	// player and themselves. Rejected before any state mutation.
	ErrInvalidPairing = errors.New("a player cannot be paired against themselves")

	// ErrMatchNotFound is returned when a result is recorded against a
	// match id that does not exist in the ledger.
	ErrMatchNotFound = errors.New("match not found")
)
