package slack

import (
	"fmt"

	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/slack-go/slack"
)

// formatResultNotification creates the Slack message for a recorded result using Block Kit.
func (s *Notifier) formatResultNotification(match *tournament.Match, player1Name, player2Name string) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", "⚔️ Match finished! ⚔️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	score1, score2 := 0, 0
	if match.Score1 != nil {
		score1 = *match.Score1
	}
	if match.Score2 != nil {
		score2 = *match.Score2
	}

	detailsText := fmt.Sprintf("%s vs %s: %d-%d", player1Name, player2Name, score1, score2)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	var resultText string
	switch {
	case score1 > score2:
		resultText = fmt.Sprintf("%s won! 🏆", player1Name)
	case score2 > score1:
		resultText = fmt.Sprintf("%s won! 🏆", player2Name)
	default:
		resultText = "It's a draw!"
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", resultText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates the Slack message for the standings table using Block Kit.
func (s *Notifier) formatStandings(stats []standings.PlayerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Tournament Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(stats) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No standings available yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, stat := range stats {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Pts: %d | P: %d W: %d D: %d L: %d | GD: %+d",
			rank,
			medal,
			stat.PlayerName,
			stat.Points,
			stat.Played,
			stat.Wins,
			stat.Draws,
			stat.Losses,
			stat.GoalDifference,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatCommentary creates the Slack message for caster commentary using Block Kit.
func (s *Notifier) formatCommentary(text string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎙️ Tournament Caster 🎙️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}
