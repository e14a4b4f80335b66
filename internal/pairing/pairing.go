// Package pairing produces match proposals from the current roster.
// Proposals are not persisted here; callers schedule them through the
// match ledger.
package pairing

import (
	"math/rand"
	"time"

	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Generator proposes random pairings. Randomness does not need to be
// cryptographically strong, but the shuffle must be uniform.
type Generator struct {
	rnd *rand.Rand
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a Generator with a fixed seed. Used for deterministic
// tests.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// QuickMatch shuffles the roster and proposes the first two players as a
// pairing. ok is false when fewer than two players are registered.
func (g *Generator) QuickMatch(players []tournament.Player) (player1ID, player2ID string, ok bool) {
	if len(players) < 2 {
		return "", "", false
	}
	shuffled := g.shuffle(players)
	return shuffled[0].ID, shuffled[1].ID, true
}

// GenerateRound shuffles the roster once and pairs consecutive players.
// With an odd roster size the last player sits the round out; that is
// documented tolerance, not an error.
func (g *Generator) GenerateRound(players []tournament.Player) [][2]string {
	if len(players) < 2 {
		return nil
	}
	shuffled := g.shuffle(players)

	pairs := make([][2]string, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		pairs = append(pairs, [2]string{shuffled[i].ID, shuffled[i+1].ID})
	}
	return pairs
}

// shuffle returns a uniformly shuffled copy of the roster.
func (g *Generator) shuffle(players []tournament.Player) []tournament.Player {
	shuffled := make([]tournament.Player, len(players))
	copy(shuffled, players)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
