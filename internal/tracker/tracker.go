package tracker

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arenamatch/arenamatch/internal/commentary"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/notifier"
	"github.com/arenamatch/arenamatch/internal/pairing"
	"github.com/arenamatch/arenamatch/internal/pubsub"
	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// New creates a new Tracker.
func New(store tournament.Store, gen *pairing.Generator, commentator commentary.Commentator, notifier notifier.Notifier, pubsub pubsub.PubSubClient, metrics metrics.Metrics) *Tracker {
	return &Tracker{
		store:       store,
		pairing:     gen,
		commentator: commentator,
		notifier:    notifier,
		pubsub:      pubsub,
		metrics:     metrics,
	}
}

// AddPlayer registers a new player on the roster.
func (t *Tracker) AddPlayer(name string) (tournament.Player, error) {
	player, err := t.store.AddPlayer(name)
	if err != nil {
		return tournament.Player{}, err
	}
	t.metrics.IncPlayersAdded()
	log.Info("Player added", "playerID", player.ID, "name", player.Name)
	return player, nil
}

// RemovePlayer drops a player from the roster. Pending matches involving
// the player are removed with them; completed matches stay in the ledger
// as history.
func (t *Tracker) RemovePlayer(id string) error {
	if err := t.store.RemovePlayer(id); err != nil {
		return err
	}
	t.metrics.IncPlayersRemoved()
	if err := t.pubsub.SendMessage(pubsub.EventPlayerRemoved, pubsub.PlayerRemovedEvent{PlayerID: id}); err != nil {
		log.Error("Failed to publish player removed event", "error", err, "playerID", id)
	}
	log.Info("Player removed", "playerID", id)
	return nil
}

// Players returns the roster in registration order.
func (t *Tracker) Players() ([]tournament.Player, error) {
	return t.store.GetAllPlayers()
}

// ScheduleMatch adds a pending match between two players.
func (t *Tracker) ScheduleMatch(player1ID, player2ID string) (tournament.Match, error) {
	match, err := t.store.ScheduleMatch(player1ID, player2ID)
	if err != nil {
		return tournament.Match{}, err
	}
	t.metrics.IncMatchesScheduled()
	log.Info("Match scheduled", "matchID", match.ID, "player1", match.Player1ID, "player2", match.Player2ID)
	return match, nil
}

// RecordResult stores a final score for a match and fires the follow-up
// side effects: a result notification and a match completed event.
// Notification or publish failures are logged but never fail the
// recording itself.
func (t *Tracker) RecordResult(matchID string, score1, score2 int, dryRun bool) (tournament.Match, error) {
	if err := t.store.RecordResult(matchID, score1, score2); err != nil {
		return tournament.Match{}, err
	}
	t.metrics.IncResultsRecorded()
	log.Info("Result recorded", "matchID", matchID, "score1", score1, "score2", score2)

	updated, err := t.store.GetMatch(matchID)
	if err != nil || updated == nil {
		log.Error("Failed to reload match after recording result", "error", err, "matchID", matchID)
		return tournament.Match{ID: matchID}, nil
	}
	match := *updated

	name1, name2 := t.resolveNames(match.Player1ID, match.Player2ID)
	if err := t.notifier.SendResultNotification(&match, name1, name2, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "matchID", match.ID)
	}

	if err := t.pubsub.SendMessage(pubsub.EventMatchCompleted, pubsub.MatchCompletedEvent{
		MatchID:   match.ID,
		Player1ID: match.Player1ID,
		Player2ID: match.Player2ID,
		Score1:    score1,
		Score2:    score2,
		Timestamp: match.Timestamp,
	}); err != nil {
		log.Error("Failed to publish match completed event", "error", err, "matchID", match.ID)
	}
	return match, nil
}

// DeleteMatch removes a match from the ledger regardless of status.
func (t *Tracker) DeleteMatch(id string) error {
	if err := t.store.DeleteMatch(id); err != nil {
		return err
	}
	t.metrics.IncMatchesDeleted()
	log.Info("Match deleted", "matchID", id)
	return nil
}

// Matches returns the full ledger, most recent first.
func (t *Tracker) Matches() ([]tournament.Match, error) {
	return t.store.GetAllMatches()
}

// QuickMatch proposes and schedules a single match between two randomly
// chosen players. It returns nil without error when the roster is too
// small to form a pair.
func (t *Tracker) QuickMatch() (*tournament.Match, error) {
	players, err := t.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	p1, p2, ok := t.pairing.QuickMatch(players)
	if !ok {
		log.Warn("Not enough players for a quick match", "count", len(players))
		return nil, nil
	}
	match, err := t.ScheduleMatch(p1, p2)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GenerateRound schedules a full round of matches, pairing as many
// players as possible. With an odd roster one player sits out.
func (t *Tracker) GenerateRound() ([]tournament.Match, error) {
	players, err := t.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	pairs := t.pairing.GenerateRound(players)
	matches := make([]tournament.Match, 0, len(pairs))
	for _, pair := range pairs {
		match, err := t.ScheduleMatch(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	log.Info("Round generated", "players", len(players), "matches", len(matches))
	return matches, nil
}

// Standings computes the current table, ranked by points then goal
// difference.
func (t *Tracker) Standings() ([]standings.PlayerStats, error) {
	players, err := t.store.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	matches, err := t.store.GetAllMatches()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	stats := standings.Rank(standings.Compute(players, matches))
	t.metrics.ObserveStandingsComputeDuration(time.Since(start).Seconds())
	return stats, nil
}

// Commentary asks the AI caster for a take on the tournament so far.
// The returned text is always usable: on failure it is a canned
// fallback line rather than an error page.
func (t *Tracker) Commentary(ctx context.Context) string {
	players, err := t.store.GetAllPlayers()
	if err != nil {
		log.Error("Failed to load players for commentary", "error", err)
		return commentary.FallbackFailure
	}
	if len(players) == 0 {
		return commentary.FallbackNoPlayers
	}
	matches, err := t.store.GetAllMatches()
	if err != nil {
		log.Error("Failed to load matches for commentary", "error", err)
		return commentary.FallbackFailure
	}
	stats, err := t.Standings()
	if err != nil {
		log.Error("Failed to compute standings for commentary", "error", err)
		return commentary.FallbackFailure
	}

	t.metrics.IncCommentaryRequests()
	text, err := t.commentator.GenerateCommentary(ctx, stats, matches, players)
	if err != nil {
		t.metrics.IncCommentaryFailures()
		log.Error("Commentary generation failed, serving fallback", "error", err)
	}
	return text
}

// NotifyStandings pushes the current table to the notification channel.
func (t *Tracker) NotifyStandings(dryRun bool) error {
	stats, err := t.Standings()
	if err != nil {
		return err
	}
	return t.notifier.SendStandings(stats, dryRun)
}

// Clear wipes the roster and the ledger.
func (t *Tracker) Clear() {
	t.store.Clear()
	log.Info("Tournament state cleared")
}

func (t *Tracker) resolveNames(player1ID, player2ID string) (string, string) {
	name1, name2 := "Unknown", "Unknown"
	if p, err := t.store.GetPlayer(player1ID); err == nil && p != nil {
		name1 = p.Name
	}
	if p, err := t.store.GetPlayer(player2ID); err == nil && p != nil {
		name2 = p.Name
	}
	return name1, name2
}
