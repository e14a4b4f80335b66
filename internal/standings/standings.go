// Package standings derives the ranked statistics table from the roster
// and the match ledger. It holds no state of its own: the table is
// recomputed in full from the two stores on every read and must never be
// treated as a cache that can go stale.
package standings

import (
	"cmp"
	"slices"

	"github.com/arenamatch/arenamatch/internal/tournament"
)

// PlayerStats is the derived per-player aggregate of match outcomes.
type PlayerStats struct {
	PlayerID       string `json:"player_id"`
	PlayerName     string `json:"player_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Compute folds every completed match into a zero-initialized table keyed
// by the currently registered players, in registry order. A completed
// match only contributes when both of its player ids still resolve to a
// registered player; historical matches against removed players are
// silently excluded.
func Compute(players []tournament.Player, matches []tournament.Match) []PlayerStats {
	table := make(map[string]*PlayerStats, len(players))
	stats := make([]PlayerStats, len(players))
	for i, p := range players {
		stats[i] = PlayerStats{PlayerID: p.ID, PlayerName: p.Name}
		table[p.ID] = &stats[i]
	}

	for _, m := range matches {
		if m.Status != tournament.StatusCompleted || m.Score1 == nil || m.Score2 == nil {
			continue
		}
		p1, ok1 := table[m.Player1ID]
		p2, ok2 := table[m.Player2ID]
		if !ok1 || !ok2 {
			continue
		}

		s1, s2 := *m.Score1, *m.Score2

		p1.Played++
		p2.Played++

		p1.GoalsFor += s1
		p1.GoalsAgainst += s2
		p1.GoalDifference = p1.GoalsFor - p1.GoalsAgainst

		p2.GoalsFor += s2
		p2.GoalsAgainst += s1
		p2.GoalDifference = p2.GoalsFor - p2.GoalsAgainst

		switch {
		case s1 > s2:
			p1.Wins++
			p1.Points += 3
			p2.Losses++
		case s2 > s1:
			p2.Wins++
			p2.Points += 3
			p1.Losses++
		default:
			p1.Draws++
			p1.Points++
			p2.Draws++
			p2.Points++
		}
	}

	return stats
}

// Rank returns a sorted copy of the table: points descending, then goal
// difference descending. Ties beyond that keep the incoming order.
func Rank(stats []PlayerStats) []PlayerStats {
	ranked := make([]PlayerStats, len(stats))
	copy(ranked, stats)

	slices.SortStableFunc(ranked, func(a, b PlayerStats) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(b.GoalDifference, a.GoalDifference)
	})
	return ranked
}
