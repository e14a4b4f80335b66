package tournament

// Store defines the interface for the player registry and match ledger.
type Store interface {
	AddPlayer(name string) (Player, error)
	RemovePlayer(playerID string) error
	GetPlayer(playerID string) (*Player, error)
	GetAllPlayers() ([]Player, error)

	ScheduleMatch(player1ID, player2ID string) (Match, error)
	RecordResult(matchID string, score1, score2 int) error
	DeleteMatch(matchID string) error
	GetMatch(matchID string) (*Match, error)
	GetAllMatches() ([]Match, error)
	GetPendingMatches() ([]Match, error)
	GetCompletedMatches() ([]Match, error)

	Clear()
}
