package notifier

import (
	"sync"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method overrides
	SendResultNotificationFunc func(match *tournament.Match, player1Name, player2Name string, dryRun bool) error
	SendStandingsFunc          func(stats []standings.PlayerStats, dryRun bool) error
	SendCommentaryFunc         func(text string, dryRun bool) error

	// Call records
	SendResultNotificationCalls []ResultNotificationCall
	SendStandingsCalls          [][]standings.PlayerStats
	SendCommentaryCalls         []string
}

// ResultNotificationCall holds the arguments of a SendResultNotification call.
type ResultNotificationCall struct {
	Match       *tournament.Match
	Player1Name string
	Player2Name string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = nil
	m.SendStandingsCalls = nil
	m.SendCommentaryCalls = nil
}

func (m *Mock) SendResultNotification(match *tournament.Match, player1Name, player2Name string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendResultNotificationCalls = append(m.SendResultNotificationCalls, ResultNotificationCall{match, player1Name, player2Name})
	if m.SendResultNotificationFunc != nil {
		return m.SendResultNotificationFunc(match, player1Name, player2Name, dryRun)
	}
	return nil
}

func (m *Mock) SendStandings(stats []standings.PlayerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, stats)
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(stats, dryRun)
	}
	return nil
}

func (m *Mock) SendCommentary(text string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCommentaryCalls = append(m.SendCommentaryCalls, text)
	if m.SendCommentaryFunc != nil {
		return m.SendCommentaryFunc(text, dryRun)
	}
	return nil
}
