package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arenamatch/arenamatch/internal/metrics"
	"github.com/arenamatch/arenamatch/internal/notifier"
	"github.com/arenamatch/arenamatch/internal/standings"
	"github.com/arenamatch/arenamatch/internal/tournament"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. An empty token leaves the notifier
// unconfigured: sends degrade to a logged warning instead of failing hard.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" {
		api = slack.New(token)
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	if s.api == nil || s.channelID == "" {
		log.Warn("Slack is not configured, skipping notification")
		return "", "", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendResultNotification announces a recorded result.
func (s *Notifier) SendResultNotification(match *tournament.Match, player1Name, player2Name string, dryRun bool) error {
	msg := s.formatResultNotification(match, player1Name, player2Name)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendStandings announces the ranked standings table.
func (s *Notifier) SendStandings(stats []standings.PlayerStats, dryRun bool) error {
	msg := s.formatStandings(stats)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendCommentary announces a piece of caster commentary.
func (s *Notifier) SendCommentary(text string, dryRun bool) error {
	msg := s.formatCommentary(text)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}
