package tournament_test

import (
	"testing"

	"github.com/arenamatch/arenamatch/internal/database"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (tournament.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := tournament.New(db)
	return store, dbTeardown
}

func TestAddAndGetPlayers(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, err := store.AddPlayer("Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)
	assert.NotZero(t, alice.JoinedAt)

	bob, err := store.AddPlayer("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	// Duplicate names are allowed, ids stay distinct.
	bob2, err := store.AddPlayer("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, bob.ID, bob2.ID)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 3)

	// Roster keeps registration order.
	assert.Equal(t, []string{"Alice", "Bob", "Bob"}, []string{players[0].Name, players[1].Name, players[2].Name})
}

func TestAddPlayer_EmptyName(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.AddPlayer("")
	assert.Error(t, err)

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestRemovePlayer_Unknown_IsNoOp(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.AddPlayer("Alice")
	require.NoError(t, err)

	require.NoError(t, store.RemovePlayer("ghost"))

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestScheduleMatch(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, err := store.AddPlayer("Alice")
	require.NoError(t, err)
	bob, err := store.AddPlayer("Bob")
	require.NoError(t, err)

	match, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusPending, match.Status)
	assert.Nil(t, match.Score1)
	assert.Nil(t, match.Score2)

	pending, err := store.GetPendingMatches()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, match.ID, pending[0].ID)
}

func TestScheduleMatch_SelfPairing(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, err := store.AddPlayer("Alice")
	require.NoError(t, err)

	_, err = store.ScheduleMatch(alice.ID, alice.ID)
	assert.ErrorIs(t, err, tournament.ErrInvalidPairing)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	assert.Empty(t, matches, "no match may be created on an invalid pairing")
}

func TestScheduleMatch_DanglingIDsAccepted(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	// The ledger does not validate that ids exist in the registry.
	match, err := store.ScheduleMatch("nobody-1", "nobody-2")
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusPending, match.Status)
}

func TestRecordResult(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")
	match, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, store.RecordResult(match.ID, 3, 1))

	got, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tournament.StatusCompleted, got.Status)
	require.NotNil(t, got.Score1)
	require.NotNil(t, got.Score2)
	assert.Equal(t, 3, *got.Score1)
	assert.Equal(t, 1, *got.Score2)
}

func TestRecordResult_UnknownMatch(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	err := store.RecordResult("ghost", 1, 0)
	assert.ErrorIs(t, err, tournament.ErrMatchNotFound)
}

func TestRecordResult_OverwriteAllowed(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")
	match, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, store.RecordResult(match.ID, 3, 1))
	// Re-recording corrects the score, the match stays completed.
	require.NoError(t, store.RecordResult(match.ID, 2, 2))

	got, err := store.GetMatch(match.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusCompleted, got.Status)
	assert.Equal(t, 2, *got.Score1)
	assert.Equal(t, 2, *got.Score2)
}

func TestDeleteMatch(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")
	match, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, store.DeleteMatch(match.ID))
	// Deleting an absent id is a no-op.
	require.NoError(t, store.DeleteMatch(match.ID))

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRemovePlayer_CascadesPendingOnly(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")
	carol, _ := store.AddPlayer("Carol")

	completed, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(completed.ID, 1, 0))

	pendingWithBob, err := store.ScheduleMatch(bob.ID, carol.ID)
	require.NoError(t, err)
	pendingWithoutBob, err := store.ScheduleMatch(alice.ID, carol.ID)
	require.NoError(t, err)

	require.NoError(t, store.RemovePlayer(bob.ID))

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	require.Len(t, matches, 2)

	ids := []string{matches[0].ID, matches[1].ID}
	assert.Contains(t, ids, completed.ID, "completed match referencing the removed player survives as history")
	assert.Contains(t, ids, pendingWithoutBob.ID)
	assert.NotContains(t, ids, pendingWithBob.ID, "pending match referencing the removed player is cascaded away")
}

func TestGetAllMatches_MostRecentFirst(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")

	first, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)
	second, err := store.ScheduleMatch(bob.ID, alice.ID)
	require.NoError(t, err)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// Equal timestamps fall back to insertion order, newest first.
	assert.Equal(t, second.ID, matches[0].ID)
	assert.Equal(t, first.ID, matches[1].ID)
}

func TestClear(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	alice, _ := store.AddPlayer("Alice")
	bob, _ := store.AddPlayer("Bob")
	_, err := store.ScheduleMatch(alice.ID, bob.ID)
	require.NoError(t, err)

	store.Clear()

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)

	matches, err := store.GetAllMatches()
	require.NoError(t, err)
	assert.Empty(t, matches)
}
