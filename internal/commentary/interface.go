package commentary

import (
	"context"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Commentator defines the interface for the generative-text service that
// produces tournament commentary. Implementations must be failure
// tolerant: the returned text is always usable, falling back to a fixed
// message when the upstream call fails. The error is informational only,
// for logging and metrics, and must never be treated as fatal.
type Commentator interface {
	GenerateCommentary(ctx context.Context, stats []standings.PlayerStats, recentMatches []tournament.Match, players []tournament.Player) (string, error)
}
