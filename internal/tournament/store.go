package tournament

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new tournament Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// AddPlayer registers a new player. Names are not unique keys, so a
// duplicate name is not an error.
func (s *store) AddPlayer(name string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return Player{}, fmt.Errorf("player name must not be empty")
	}

	player := Player{
		ID:       uuid.New().String(),
		Name:     name,
		JoinedAt: time.Now().UnixMilli(),
	}

	_, err := s.db.Exec("INSERT INTO players (id, name, joined_at) VALUES (?, ?, ?)", player.ID, player.Name, player.JoinedAt)
	if err != nil {
		return Player{}, fmt.Errorf("failed to add player: %w", err)
	}

	log.Info("Added player to the roster", "playerID", player.ID, "name", player.Name)
	return player, nil
}

// RemovePlayer removes a player from the roster. Every pending match
// referencing the player is cascaded away in the same transaction;
// completed matches survive as history. Removing an unknown id is a no-op.
func (s *store) RemovePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.Exec(
		"DELETE FROM matches WHERE status = ? AND (player1_id = ? OR player2_id = ?)",
		StatusPending, playerID, playerID,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to cascade pending matches: %w", err)
	}
	cascaded, _ := res.RowsAffected()

	_, err = tx.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to remove player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit player removal: %w", err)
	}

	log.Info("Removed player from the roster", "playerID", playerID, "cascaded_pending_matches", cascaded)
	return nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Player
	err := s.db.QueryRow("SELECT id, name, joined_at FROM players WHERE id = ?", playerID).
		Scan(&p.ID, &p.Name, &p.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &p, nil
}

// GetAllPlayers returns the roster in registration order.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, joined_at FROM players ORDER BY rowid")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.JoinedAt); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ScheduleMatch creates a pending match between two distinct players.
// The ids are not checked against the roster: completed matches may
// legitimately reference players that were removed later, so the ledger
// never hard-fails on a dangling reference.
func (s *store) ScheduleMatch(player1ID, player2ID string) (Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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

	_, err := s.db.Exec(
		"INSERT INTO matches (id, player1_id, player2_id, status, created_at) VALUES (?, ?, ?, ?, ?)",
		match.ID, match.Player1ID, match.Player2ID, match.Status, match.Timestamp,
	)
	if err != nil {
		return Match{}, fmt.Errorf("failed to schedule match: %w", err)
	}

	log.Info("Scheduled match", "matchID", match.ID, "player1ID", player1ID, "player2ID", player2ID)
	return match, nil
}

// RecordResult sets both scores atomically and completes the match.
// Recording against an already completed match overwrites the previous
// result; the one-way Pending -> Completed transition is still preserved.
func (s *store) RecordResult(matchID string, score1, score2 int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE matches SET score1 = ?, score2 = ?, status = ? WHERE id = ?",
		score1, score2, StatusCompleted, matchID,
	)
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	if affected == 0 {
		return ErrMatchNotFound
	}

	log.Info("Recorded match result", "matchID", matchID, "score1", score1, "score2", score2)
	return nil
}

// DeleteMatch removes a match in either status. Deleting an unknown id is
// a no-op.
func (s *store) DeleteMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	log.Info("Deleted match", "matchID", matchID)
	return nil
}

func (s *store) GetMatch(matchID string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT id, player1_id, player2_id, score1, score2, status, created_at FROM matches WHERE id = ?",
		matchID,
	)
	match, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// GetAllMatches returns the full ledger, most recent first. Ties on the
// creation timestamp fall back to insertion order, newest insert first.
func (s *store) GetAllMatches() ([]Match, error) {
	return s.queryMatches("SELECT id, player1_id, player2_id, score1, score2, status, created_at FROM matches ORDER BY created_at DESC, rowid DESC")
}

func (s *store) GetPendingMatches() ([]Match, error) {
	return s.queryMatches(
		"SELECT id, player1_id, player2_id, score1, score2, status, created_at FROM matches WHERE status = ? ORDER BY created_at DESC, rowid DESC",
		StatusPending,
	)
}

func (s *store) GetCompletedMatches() ([]Match, error) {
	return s.queryMatches(
		"SELECT id, player1_id, player2_id, score1, score2, status, created_at FROM matches WHERE status = ? ORDER BY created_at DESC, rowid DESC",
		StatusCompleted,
	)
}

func (s *store) queryMatches(query string, args ...any) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

// scanMatch is a helper to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var match Match
	var score1, score2 sql.NullInt64

	err := scanner.Scan(
		&match.ID, &match.Player1ID, &match.Player2ID,
		&score1, &score2, &match.Status, &match.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	if score1.Valid {
		v := int(score1.Int64)
		match.Score1 = &v
	}
	if score2.Valid {
		v := int(score2.Int64)
		match.Score2 = &v
	}
	return &match, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err = tx.Exec("DELETE FROM matches"); err != nil {
		log.Error("Failed to clear matches table", "error", err)
		tx.Rollback()
		return
	}

	if _, err = tx.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}
