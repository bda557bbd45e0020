package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padel-ranking/internal/metrics"
	"github.com/mauv0809/padel-ranking/internal/notifier"
	"github.com/mauv0809/padel-ranking/internal/ranking"
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
	loc       *time.Location
}

// NewNotifier creates a new Notifier. An empty token leaves the notifier able
// to format slash command responses but not to post messages.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	var api slackClient
	if token != "" {
		api = slack.New(token)
	}
	return NewNotifierWithAPI(api, channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	loc, err := time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		loc = time.Local
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		loc:       loc,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}
	if s.api == nil || s.channelID == "" {
		return "", "", notifier.ErrNotConfigured
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
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendResultNotification(n notifier.ResultNotification, dryRun bool) error {
	msg := s.formatResultNotification(n)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLeaderboard(standings []ranking.Standing, dryRun bool) error {
	msg := s.formatLeaderboard(standings)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(standings []ranking.Standing) (any, error) {
	return s.formatLeaderboard(standings), nil
}

// FormatHeadToHeadResponse formats the head-to-head totals for a slash command response.
func (s *Notifier) FormatHeadToHeadResponse(player1, player2 string, totals ranking.Totals) (any, error) {
	return s.formatHeadToHead(player1, player2, totals), nil
}

// formatResultNotification creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatResultNotification(n notifier.ResultNotification) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Match recorded! 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	p1, p2 := ranking.Award(n.Score)
	var resultText string
	switch {
	case p1 > p2:
		resultText = fmt.Sprintf("%s beat %s %d-%d 🏆", n.Player1Name, n.Player2Name, n.Score.ScoreA, n.Score.ScoreB)
	case p2 > p1:
		resultText = fmt.Sprintf("%s beat %s %d-%d 🏆", n.Player2Name, n.Player1Name, n.Score.ScoreB, n.Score.ScoreA)
	default:
		resultText = fmt.Sprintf("%s and %s drew %d-%d", n.Player1Name, n.Player2Name, n.Score.ScoreA, n.Score.ScoreB)
	}
	if !n.PlayedAt.IsZero() {
		resultText += "\n" + n.PlayedAt.In(s.loc).Format("Monday 02 Jan, 15:04")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s: %d pts", n.Player1Name, n.HeadToHead.Player1), true, false),
		slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s: %d pts", n.Player2Name, n.HeadToHead.Player2), true, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Head-to-head:", true, false), fields, nil))

	matchesText := fmt.Sprintf("%d matches played between them", n.Matches)
	if n.Matches == 1 {
		matchesText = "First match between them"
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", matchesText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates a Slack message to display the standings.
func (s *Notifier) formatLeaderboard(standings []ranking.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No results yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for i, st := range standings {
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

		name := st.Name
		if name == "" {
			name = st.ID
		}
		playerText := fmt.Sprintf("%d. %s %s\n> *%d pts* | W %d | D %d | L %d (%d played)",
			rank,
			medal,
			name,
			st.Points,
			st.Won,
			st.Drawn,
			st.Lost,
			st.Played,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) formatHeadToHead(player1, player2 string, totals ranking.Totals) slack.Message {
	headerText := fmt.Sprintf("⚔️ %s vs %s", player1, player2)
	var summary string
	switch {
	case totals.Player1 == 0 && totals.Player2 == 0:
		summary = "No points between these two yet."
	case totals.Player1 > totals.Player2:
		summary = fmt.Sprintf("*%s* leads the head-to-head", player1)
	case totals.Player2 > totals.Player1:
		summary = fmt.Sprintf("*%s* leads the head-to-head", player2)
	default:
		summary = "All square"
	}
	scoreText := fmt.Sprintf("> %s: *%d* pts\n> %s: *%d* pts", player1, totals.Player1, player2, totals.Player2)

	return slack.NewBlockMessage(
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join([]string{summary, scoreText}, "\n"), false, false), nil, nil),
	)
}
