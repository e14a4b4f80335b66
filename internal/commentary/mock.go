package commentary

import (
	"context"
	"sync"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Mock is a mock implementation of the Commentator interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spy for the method call
	GenerateCommentaryFunc func(ctx context.Context, stats []standings.PlayerStats, recentMatches []tournament.Match, players []tournament.Player) (string, error)

	// Call records
	GenerateCommentaryCalls []struct {
		Stats         []standings.PlayerStats
		RecentMatches []tournament.Match
		Players       []tournament.Player
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateCommentaryCalls = nil
}

func (m *Mock) GenerateCommentary(ctx context.Context, stats []standings.PlayerStats, recentMatches []tournament.Match, players []tournament.Player) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateCommentaryCalls = append(m.GenerateCommentaryCalls, struct {
		Stats         []standings.PlayerStats
		RecentMatches []tournament.Match
		Players       []tournament.Player
	}{stats, recentMatches, players})
	if m.GenerateCommentaryFunc != nil {
		return m.GenerateCommentaryFunc(ctx, stats, recentMatches, players)
	}
	return "mock commentary", nil
}
