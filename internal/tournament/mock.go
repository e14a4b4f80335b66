package tournament

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mock is an in-memory implementation of the Store interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	players []Player
	matches []Match

	// Spies for method overrides
	AddPlayerFunc     func(name string) (Player, error)
	ScheduleMatchFunc func(player1ID, player2ID string) (Match, error)
	RecordResultFunc  func(matchID string, score1, score2 int) error

	// Call records
	RemovePlayerCalls []string
	DeleteMatchCalls  []string
	RecordResultCalls []struct {
		MatchID        string
		Score1, Score2 int
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) AddPlayer(name string) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(name)
	}
	if name == "" {
		return Player{}, fmt.Errorf("player name must not be empty")
	}
	p := Player{ID: uuid.New().String(), Name: name, JoinedAt: time.Now().UnixMilli()}
	m.players = append(m.players, p)
	return p, nil
}

func (m *Mock) RemovePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovePlayerCalls = append(m.RemovePlayerCalls, playerID)

	kept := m.players[:0]
	for _, p := range m.players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	m.players = kept

	keptMatches := m.matches[:0]
	for _, match := range m.matches {
		if match.Status == StatusPending && (match.Player1ID == playerID || match.Player2ID == playerID) {
			continue
		}
		keptMatches = append(keptMatches, match)
	}
	m.matches = keptMatches
	return nil
}

func (m *Mock) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.ID == playerID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Mock) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Player(nil), m.players...), nil
}

func (m *Mock) ScheduleMatch(player1ID, player2ID string) (Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ScheduleMatchFunc != nil {
		return m.ScheduleMatchFunc(player1ID, player2ID)
	}
	if player1ID == player2ID {
		return Match{}, ErrInvalidPairing
	}
	match := Match{
		ID:        uuid.New().String(),
		Player1ID: player1ID,
		Player2ID: player2ID,
		Status:    StatusPending,
		Timestamp: time.Now().UnixMilli(),
	}
	m.matches = append([]Match{match}, m.matches...)
	return match, nil
}

func (m *Mock) RecordResult(matchID string, score1, score2 int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordResultCalls = append(m.RecordResultCalls, struct {
		MatchID        string
		Score1, Score2 int
	}{matchID, score1, score2})
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(matchID, score1, score2)
	}
	for i := range m.matches {
		if m.matches[i].ID == matchID {
			s1, s2 := score1, score2
			m.matches[i].Score1 = &s1
			m.matches[i].Score2 = &s2
			m.matches[i].Status = StatusCompleted
			return nil
		}
	}
	return ErrMatchNotFound
}

func (m *Mock) DeleteMatch(matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, matchID)
	kept := m.matches[:0]
	for _, match := range m.matches {
		if match.ID != matchID {
			kept = append(kept, match)
		}
	}
	m.matches = kept
	return nil
}

func (m *Mock) GetMatch(matchID string) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, match := range m.matches {
		if match.ID == matchID {
			cp := match
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Mock) GetAllMatches() ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Match(nil), m.matches...), nil
}

func (m *Mock) GetPendingMatches() ([]Match, error) {
	return m.matchesByStatus(StatusPending)
}

func (m *Mock) GetCompletedMatches() ([]Match, error) {
	return m.matchesByStatus(StatusCompleted)
}

func (m *Mock) matchesByStatus(status MatchStatus) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Match
	for _, match := range m.matches {
		if match.Status == status {
			out = append(out, match)
		}
	}
	return out, nil
}

func (m *Mock) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = nil
	m.matches = nil
}
