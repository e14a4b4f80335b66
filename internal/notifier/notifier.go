package notifier

import (
	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendResultNotification announces a completed match. The player names
	// are resolved by the caller since the ledger only holds ids.
	SendResultNotification(match *tournament.Match, player1Name, player2Name string, dryRun bool) error

	// SendStandings announces the current ranked standings table.
	SendStandings(stats []standings.PlayerStats, dryRun bool) error

	// SendCommentary announces a piece of AI caster commentary.
	SendCommentary(text string, dryRun bool) error
}
