package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenamatch/arenamatch/internal/commentary"
	"github.com/arenamatch/arenamatch/internal/config"
	"github.com/arenamatch/arenamatch/internal/database"
	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/notifier"
	"github.com/arenamatch/arenamatch/internal/pairing"
	"github.com/arenamatch/arenamatch/internal/pubsub"
	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/arenamatch/arenamatch/internal/tracker"
)

type serverDeps struct {
	commentator *commentary.Mock
	notifier    *notifier.Mock
	pubsub      *pubsub.MockPubSubClient
}

// setupTestServer initializes a server backed by an in-memory database
// and mock collaborators.
func setupTestServer(t *testing.T) (*Server, *serverDeps, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	deps := &serverDeps{
		commentator: commentary.NewMock(),
		notifier:    notifier.NewMock(),
		pubsub:      pubsub.NewMock(),
	}

	store := tournament.New(db)
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	tr := tracker.New(store, pairing.NewSeeded(7), deps.commentator, deps.notifier, deps.pubsub, metricsSvc)
	server := NewServer(tr, metricsSvc, metricsHandler, config.Config{})

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
	}
	return server, deps, teardown
}

func postJSON(t *testing.T, server *Server, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func addPlayer(t *testing.T, server *Server, name string) tournament.Player {
	t.Helper()
	rr := postJSON(t, server, "/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)
	var player tournament.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func scheduleMatch(t *testing.T, server *Server, p1, p2 string) tournament.Match {
	t.Helper()
	rr := postJSON(t, server, "/matches", map[string]string{"player1_id": p1, "player2_id": p2})
	require.Equal(t, http.StatusCreated, rr.Code)
	var match tournament.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &match))
	return match
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestAddPlayerHandler(t *testing.T) {
	t.Run("creates a player", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		player := addPlayer(t, server, "Alice")
		assert.Equal(t, "Alice", player.Name)
		assert.NotEmpty(t, player.ID)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/players", map[string]string{"name": ""})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		req := httptest.NewRequest("POST", "/players", strings.NewReader("{"))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRemovePlayerHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	alice := addPlayer(t, server, "Alice")
	bob := addPlayer(t, server, "Bob")
	pending := scheduleMatch(t, server, alice.ID, bob.ID)

	req := httptest.NewRequest("DELETE", "/players/"+alice.ID, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Roster shrinks and the pending match is cascaded away.
	req = httptest.NewRequest("GET", "/players", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	var players []tournament.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Bob", players[0].Name)

	req = httptest.NewRequest("GET", "/matches", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	var matches []tournament.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
	for _, m := range matches {
		assert.NotEqual(t, pending.ID, m.ID)
	}
}

func TestScheduleMatchHandler(t *testing.T) {
	t.Run("schedules a pending match", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		alice := addPlayer(t, server, "Alice")
		bob := addPlayer(t, server, "Bob")

		match := scheduleMatch(t, server, alice.ID, bob.ID)
		assert.Equal(t, tournament.StatusPending, match.Status)
		assert.Nil(t, match.Score1)
		assert.Nil(t, match.Score2)
	})

	t.Run("rejects a self pairing", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		alice := addPlayer(t, server, "Alice")
		rr := postJSON(t, server, "/matches", map[string]string{"player1_id": alice.ID, "player2_id": alice.ID})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRecordResultHandler(t *testing.T) {
	t.Run("records a result and fires side effects", func(t *testing.T) {
		server, deps, teardown := setupTestServer(t)
		defer teardown()

		alice := addPlayer(t, server, "Alice")
		bob := addPlayer(t, server, "Bob")
		match := scheduleMatch(t, server, alice.ID, bob.ID)

		rr := postJSON(t, server, fmt.Sprintf("/matches/%s/result", match.ID), map[string]int{"score1": 3, "score2": 1})
		require.Equal(t, http.StatusOK, rr.Code)

		var updated tournament.Match
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, tournament.StatusCompleted, updated.Status)
		require.NotNil(t, updated.Score1)
		assert.Equal(t, 3, *updated.Score1)

		require.Len(t, deps.notifier.SendResultNotificationCalls, 1)
		assert.Equal(t, "Alice", deps.notifier.SendResultNotificationCalls[0].Player1Name)
		require.Len(t, deps.pubsub.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventMatchCompleted), deps.pubsub.SendMessageCalls[0].Topic)
	})

	t.Run("returns 404 for an unknown match", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/matches/nope/result", map[string]int{"score1": 1, "score2": 0})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("rejects negative scores", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		alice := addPlayer(t, server, "Alice")
		bob := addPlayer(t, server, "Bob")
		match := scheduleMatch(t, server, alice.ID, bob.ID)

		rr := postJSON(t, server, fmt.Sprintf("/matches/%s/result", match.ID), map[string]int{"score1": -1, "score2": 0})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("allows overwriting a completed result", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		alice := addPlayer(t, server, "Alice")
		bob := addPlayer(t, server, "Bob")
		match := scheduleMatch(t, server, alice.ID, bob.ID)

		rr := postJSON(t, server, fmt.Sprintf("/matches/%s/result", match.ID), map[string]int{"score1": 3, "score2": 1})
		require.Equal(t, http.StatusOK, rr.Code)
		rr = postJSON(t, server, fmt.Sprintf("/matches/%s/result", match.ID), map[string]int{"score1": 0, "score2": 2})
		require.Equal(t, http.StatusOK, rr.Code)

		var updated tournament.Match
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		require.NotNil(t, updated.Score2)
		assert.Equal(t, 2, *updated.Score2)
	})
}

func TestDeleteMatchHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	alice := addPlayer(t, server, "Alice")
	bob := addPlayer(t, server, "Bob")
	match := scheduleMatch(t, server, alice.ID, bob.ID)

	req := httptest.NewRequest("DELETE", "/matches/"+match.ID, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestQuickMatchHandler(t *testing.T) {
	t.Run("creates a match with enough players", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		addPlayer(t, server, "Alice")
		addPlayer(t, server, "Bob")

		req := httptest.NewRequest("POST", "/matches/quick", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		var match tournament.Match
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &match))
		assert.Equal(t, tournament.StatusPending, match.Status)
	})

	t.Run("conflicts with fewer than two players", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		addPlayer(t, server, "Alice")
		req := httptest.NewRequest("POST", "/matches/quick", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestGenerateRoundHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		addPlayer(t, server, name)
	}

	req := httptest.NewRequest("POST", "/matches/round", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var matches []tournament.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
	assert.Len(t, matches, 2)
}

func TestStandingsHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	alice := addPlayer(t, server, "Alice")
	bob := addPlayer(t, server, "Bob")
	match := scheduleMatch(t, server, alice.ID, bob.ID)
	rr := postJSON(t, server, fmt.Sprintf("/matches/%s/result", match.ID), map[string]int{"score1": 3, "score2": 1})
	require.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest("GET", "/standings", nil)
	rr2 := httptest.NewRecorder()
	server.ServeHTTP(rr2, req)
	require.Equal(t, http.StatusOK, rr2.Code)

	var stats []standings.PlayerStats
	require.NoError(t, json.Unmarshal(rr2.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, "Alice", stats[0].PlayerName)
	assert.Equal(t, 3, stats[0].Points)
	assert.Equal(t, 2, stats[0].GoalDifference)
}

func TestCommentaryHandler(t *testing.T) {
	t.Run("returns generated commentary", func(t *testing.T) {
		server, deps, teardown := setupTestServer(t)
		defer teardown()

		addPlayer(t, server, "Alice")
		deps.commentator.GenerateCommentaryFunc = func(ctx context.Context, stats []standings.PlayerStats, matches []tournament.Match, players []tournament.Player) (string, error) {
			return "a gripping opener", nil
		}

		rr := postJSON(t, server, "/commentary", struct{}{})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Commentary string `json:"commentary"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "a gripping opener", resp.Commentary)
	})

	t.Run("empty roster returns the no-players line", func(t *testing.T) {
		server, _, teardown := setupTestServer(t)
		defer teardown()

		rr := postJSON(t, server, "/commentary", struct{}{})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Commentary string `json:"commentary"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, commentary.FallbackNoPlayers, resp.Commentary)
	})
}

func TestNotifyStandingsHandler(t *testing.T) {
	server, deps, teardown := setupTestServer(t)
	defer teardown()

	addPlayer(t, server, "Alice")
	rr := postJSON(t, server, "/notify/standings?dry_run=true", struct{}{})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, deps.notifier.SendStandingsCalls, 1)
}

func TestClearHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	addPlayer(t, server, "Alice")
	req := httptest.NewRequest("GET", "/clear", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("GET", "/players", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	var players []tournament.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Empty(t, players)
}

func TestMetricsEndpoint(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	addPlayer(t, server, "Alice")

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "arena_players_added_total")
}
