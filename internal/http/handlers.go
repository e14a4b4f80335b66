package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear tournament state")
		s.Tracker.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Tournament cleared!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Tracker.Players()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	type request struct {
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		player, err := s.Tracker.AddPlayer(req.Name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Warn("Rejected player registration", "error", err)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

func (s *Server) RemovePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		if err := s.Tracker.RemovePlayer(playerID); err != nil {
			http.Error(w, "Failed to remove player", http.StatusInternalServerError)
			log.Error("Failed to remove player", "error", err, "playerID", playerID)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Tracker.Matches()
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) ScheduleMatchHandler() http.HandlerFunc {
	type request struct {
		Player1ID string `json:"player1_id"`
		Player2ID string `json:"player2_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		match, err := s.Tracker.ScheduleMatch(req.Player1ID, req.Player2ID)
		if err != nil {
			if errors.Is(err, tournament.ErrInvalidPairing) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to schedule match", http.StatusInternalServerError)
			log.Error("Failed to schedule match", "error", err)
			return
		}
		respondJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) RecordResultHandler() http.HandlerFunc {
	type request struct {
		Score1 int `json:"score1"`
		Score2 int `json:"score2"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Score1 < 0 || req.Score2 < 0 {
			http.Error(w, "Scores must be non-negative", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		match, err := s.Tracker.RecordResult(matchID, req.Score1, req.Score2, isDryRun)
		if err != nil {
			if errors.Is(err, tournament.ErrMatchNotFound) {
				http.Error(w, "Match not found", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to record result", http.StatusInternalServerError)
			log.Error("Failed to record result", "error", err, "matchID", matchID)
			return
		}
		respondJSON(w, http.StatusOK, match)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("id")
		if err := s.Tracker.DeleteMatch(matchID); err != nil {
			http.Error(w, "Failed to delete match", http.StatusInternalServerError)
			log.Error("Failed to delete match", "error", err, "matchID", matchID)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) QuickMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Tracker.QuickMatch()
		if err != nil {
			http.Error(w, "Failed to generate quick match", http.StatusInternalServerError)
			log.Error("Failed to generate quick match", "error", err)
			return
		}
		if match == nil {
			http.Error(w, "Need at least two players for a quick match", http.StatusConflict)
			return
		}
		respondJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) GenerateRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Tracker.GenerateRound()
		if err != nil {
			http.Error(w, "Failed to generate round", http.StatusInternalServerError)
			log.Error("Failed to generate round", "error", err)
			return
		}
		respondJSON(w, http.StatusCreated, matches)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Tracker.Standings()
		if err != nil {
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			log.Error("Failed to compute standings", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) CommentaryHandler() http.HandlerFunc {
	type response struct {
		Commentary string `json:"commentary"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		text := s.Tracker.Commentary(r.Context())
		respondJSON(w, http.StatusOK, response{Commentary: text})
	}
}

func (s *Server) NotifyStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		if err := s.Tracker.NotifyStandings(isDryRun); err != nil {
			http.Error(w, "Failed to send standings", http.StatusInternalServerError)
			log.Error("Failed to send standings notification", "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
