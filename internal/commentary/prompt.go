package commentary

import (
	"fmt"
	"strings"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
)

// BuildPrompt assembles the caster prompt: the top three players by
// points, up to five most recent completed matches, and the roster size.
// recentMatches is expected most-recent-first. Dangling player references
// in historical matches render as "Unknown".
func BuildPrompt(stats []standings.PlayerStats, recentMatches []tournament.Match, players []tournament.Player) string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	lookup := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Unknown"
	}

	var results []string
	for _, m := range recentMatches {
		if len(results) == 5 {
			break
		}
		if m.Status != tournament.StatusCompleted || m.Score1 == nil || m.Score2 == nil {
			continue
		}
		results = append(results, fmt.Sprintf("%s vs %s: %d-%d", lookup(m.Player1ID), lookup(m.Player2ID), *m.Score1, *m.Score2))
	}

	var top []string
	for _, s := range stats {
		if len(top) == 3 {
			break
		}
		top = append(top, fmt.Sprintf("%s (%dpts)", s.PlayerName, s.Points))
	}

	return fmt.Sprintf(`You are an excited e-sports shoutcaster or sports commentator.
Analyze the current state of this tournament.

Top Players: %s
Recent Results: %s
Total Players: %d

Give me a short, hype paragraph (max 100 words) summarizing the action, mentioning who is dominating, and any potential upsets.
Keep it energetic and fun. Use markdown for bolding key names.`,
		strings.Join(top, ", "), strings.Join(results, " | "), len(players))
}
